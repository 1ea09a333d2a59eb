package selection_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pollosrrj/pos/internal/service/selection"
)

type fakeDeleter struct {
	deleted []int64
}

func (f *fakeDeleter) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestToggle(t *testing.T) {
	s := selection.NewSet()

	s.Toggle(1)
	s.Toggle(2)
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(2))
	assert.Equal(t, 2, s.Len())

	s.Toggle(1)
	assert.False(t, s.Contains(1))
	assert.Equal(t, 1, s.Len())
}

func TestClear(t *testing.T) {
	s := selection.NewSet()
	s.Toggle(1)
	s.Toggle(2)

	s.Clear()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.IDs())
}

func TestDeleteAll(t *testing.T) {
	s := selection.NewSet()
	s.Toggle(10)
	s.Toggle(20)
	s.Toggle(30)

	d := &fakeDeleter{}
	require.NoError(t, s.DeleteAll(context.Background(), d))

	assert.ElementsMatch(t, []int64{10, 20, 30}, d.deleted)
	assert.Zero(t, s.Len())
}
