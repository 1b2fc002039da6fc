package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashLockKey(t *testing.T) {
	a := hashLockKey(LockNamespaceWorkQueue, "4b1f0c2e-0000-0000-0000-000000000001")
	b := hashLockKey(LockNamespaceWorkQueue, "4b1f0c2e-0000-0000-0000-000000000001")
	c := hashLockKey(LockNamespaceWorkQueue, "4b1f0c2e-0000-0000-0000-000000000002")

	assert.Equal(t, a, b, "same key must hash identically")
	assert.NotEqual(t, a, c)
	assert.GreaterOrEqual(t, a, int64(0))
	assert.GreaterOrEqual(t, c, int64(0))
}

func TestHashLockKey_NamespaceMatters(t *testing.T) {
	assert.NotEqual(t,
		hashLockKey("work_queue", "abc"),
		hashLockKey("other", "abc"))
}
