/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct{ ID string }

type other struct{}

func TestIndexMapRegistry(t *testing.T) {
	RegisterIndexMap[sample](map[string]string{"PK": "S#{ID}", "SK": "S#{ID}"})

	m, ok := GetIndexMap[sample]()
	require.True(t, ok)
	assert.Equal(t, "S#{ID}", m["PK"])

	// returned maps are copies
	m["PK"] = "mutated"
	again, _ := GetIndexMap[sample]()
	assert.Equal(t, "S#{ID}", again["PK"])

	_, ok = GetIndexMap[other]()
	assert.False(t, ok)
}
