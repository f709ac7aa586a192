package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestAll_TablesInDependencyOrder(t *testing.T) {
	cache := &sync.Map{}
	position := make(map[string]int)

	for i, m := range All() {
		s, err := schema.Parse(m, cache, schema.NamingStrategy{})
		require.NoError(t, err)

		_, dup := position[s.Table]
		assert.False(t, dup, "table %s listed twice", s.Table)
		position[s.Table] = i
	}

	assert.Less(t, position[(&StoreModel{}).TableName()], position[(&StoreItemModel{}).TableName()])
	assert.Less(t, position[(&ProximityNotificationModel{}).TableName()], position[(&NotificationLogModel{}).TableName()])
}
