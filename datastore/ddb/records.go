/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"github.com/suparena/structregistry/model"
	"github.com/suparena/structregistry/registry"
)

// entityTypeAttribute tags every item with its record kind so both collections
// can share one table.
const entityTypeAttribute = "EntityType"

// Index maps for the registry records. Inner and Outer keys never collide because
// their partition keys carry distinct prefixes.
var (
	InnerIndexMap = map[string]string{
		"PK": "INNER#{id}",
		"SK": "INNER#{id}",
	}
	OuterIndexMap = map[string]string{
		"PK": "OUTER#{id}",
		"SK": "OUTER#{id}",
	}
)

func init() {
	registry.RegisterIndexMap[model.Inner](InnerIndexMap)
	registry.RegisterIndexMap[model.Outer](OuterIndexMap)
}
