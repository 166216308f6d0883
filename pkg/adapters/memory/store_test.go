package memory_test

import (
	"testing"

	"github.com/jphuse/nuskell/pkg/adapters/memory"
	"github.com/jphuse/nuskell/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunSystemStoreContract(t, memory.NewStore())
}
