/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package structregistry

import (
	"context"
	"sync"
	"testing"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/structregistry/errors"
	"github.com/suparena/structregistry/event"
	"github.com/suparena/structregistry/model"
)

// tableClient is an in-memory DynamoDB table keyed by PK and SK.
type tableClient struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
}

func newTableClient() *tableClient {
	return &tableClient{items: make(map[string]map[string]types.AttributeValue)}
}

func tableKey(item map[string]types.AttributeValue) string {
	pk := item["PK"].(*types.AttributeValueMemberS).Value
	sk := item["SK"].(*types.AttributeValueMemberS).Value
	return pk + "|" + sk
}

func (c *tableClient) GetItem(ctx context.Context, in *sdk.GetItemInput, _ ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &sdk.GetItemOutput{Item: c.items[tableKey(in.Key)]}, nil
}

func (c *tableClient) PutItem(ctx context.Context, in *sdk.PutItemInput, _ ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[tableKey(in.Item)] = in.Item
	return &sdk.PutItemOutput{}, nil
}

func TestDynamoDBRegistryRoundTrip(t *testing.T) {
	ctx := context.Background()
	rec := event.NewRecorder()
	reg := newDynamoDBRegistry(newTableClient(), "registry", WithEmitter(rec))

	require.NoError(t, reg.CreateInner(ctx, sampleInner(), strPtr("evt-inner")))
	require.NoError(t, reg.CreateOuter(ctx, sampleOuter(), nil))

	inner, err := reg.GetInner(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, sampleInner(), inner)

	outer, err := reg.GetOuter(ctx, "222")
	require.NoError(t, err)
	assert.True(t, sampleOuter().Equal(outer))

	// both collections share the table but not the key space
	_, err = reg.GetOuter(ctx, "111")
	assert.True(t, errors.IsNotFound(err))

	assert.Equal(t, []event.StructCreated{{EventID: "evt-inner", StructID: "111"}}, rec.Events())
}

func TestDynamoDBRegistryOverwrite(t *testing.T) {
	ctx := context.Background()
	reg := newDynamoDBRegistry(newTableClient(), "registry")

	require.NoError(t, reg.CreateInner(ctx, model.Inner{ID: "1", Value: "first"}, nil))
	require.NoError(t, reg.CreateInner(ctx, model.Inner{ID: "1", Value: "second"}, nil))

	got, err := reg.GetInner(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Value)

	second := sampleOuter()
	second.Extensions = map[string]string{"only": "this"}
	require.NoError(t, reg.CreateOuter(ctx, sampleOuter(), nil))
	require.NoError(t, reg.CreateOuter(ctx, second, nil))

	outer, err := reg.GetOuter(ctx, "222")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"only": "this"}, outer.Extensions)
}

func TestDynamoDBRegistryDecodeFailureLeavesTableUntouched(t *testing.T) {
	ctx := context.Background()
	client := newTableClient()
	reg := newDynamoDBRegistry(client, "registry")

	err := reg.CreateInnerText(ctx, `{"ID":"111","value":"v","my_value":"mv"}`, strPtr("evt"))
	assert.True(t, errors.IsDecodeError(err))
	assert.Empty(t, client.items)
}
