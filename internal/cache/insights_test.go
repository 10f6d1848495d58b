package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/werb210/ocr-reconciler/internal/cache"
)

func TestKey_EncodesSnapshotIdentity(t *testing.T) {
	assert.Equal(t, "ocr:insights:app-1:v3:n17", cache.Key("app-1", 3, 17))

	// a new extraction run changes the key, so stale entries are never served
	assert.NotEqual(t, cache.Key("app-1", 3, 17), cache.Key("app-1", 4, 18))
	assert.NotEqual(t, cache.Key("app-1", 3, 17), cache.Key("app-2", 3, 17))
}
