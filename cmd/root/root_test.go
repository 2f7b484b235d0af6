package root_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ekaraca/vakif-ledger/cmd/root"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "vakif-ledger", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "deduplicated ledger")
	assert.Contains(t, root.Cmd.Long, "SQLite ledger")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRun)
}

func TestGetContainerBeforeInit(t *testing.T) {
	// Before the root command runs, no container exists.
	root.SetContainer(nil)
	assert.Nil(t, root.GetContainer())
}
