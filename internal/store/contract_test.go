package store_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealstore/internal/domain"
)

func TestStores_RoundTrip(t *testing.T) {
	for name, s := range kinds(t) {
		t.Run(name, func(t *testing.T) {
			in := &secret{ID: "api-key", Owner: "alice", Value: "hunter2", Version: 7, Labels: map[string]string{"env": "prod"}}
			require.NoError(t, s.Save(in))

			got, ok, err := s.Read("api-key")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, in, got)
		})
	}
}

func TestStores_ReadAbsent(t *testing.T) {
	for name, s := range kinds(t) {
		t.Run(name, func(t *testing.T) {
			got, ok, err := s.Read("never-saved")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

func TestStores_SaveGeneratesID(t *testing.T) {
	for name, s := range kinds(t) {
		t.Run(name, func(t *testing.T) {
			in := &secret{Owner: "bob", Value: "v"}
			require.NoError(t, s.Save(in))
			require.NotEmpty(t, in.ID)

			got, ok, err := s.Read(in.ID)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, in.ID, got.ID)
		})
	}
}

func TestStores_Overwrite(t *testing.T) {
	for name, s := range kinds(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Save(&secret{ID: "k", Value: "old"}))
			require.NoError(t, s.Save(&secret{ID: "k", Value: "new"}))

			all, err := s.ReadAll()
			require.NoError(t, err)
			require.Len(t, all, 1)
			assert.Equal(t, "new", all[0].Value)
		})
	}
}

func TestStores_BulkSave(t *testing.T) {
	const n = 25

	for name, s := range kinds(t) {
		t.Run(name, func(t *testing.T) {
			items := make([]*secret, n)
			for i := range items {
				items[i] = &secret{Owner: "bulk", Value: fmt.Sprintf("value-%02d", i), Version: i}
			}
			require.NoError(t, s.SaveAll(items))

			all, err := s.ReadAll()
			require.NoError(t, err)
			require.Len(t, all, n)
			for i, got := range all {
				assert.Equal(t, items[i], got, "readAll keeps save order")

				one, ok, err := s.Read(items[i].ID)
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, items[i], one)
			}
		})
	}
}

func TestStores_RemoveAndReset(t *testing.T) {
	for name, s := range kinds(t) {
		t.Run(name, func(t *testing.T) {
			assert.True(t, s.IsEmpty())

			require.NoError(t, s.SaveAll([]*secret{{ID: "a"}, {ID: "b"}, {ID: "c"}}))
			assert.False(t, s.IsEmpty())

			s.Remove("b")
			s.Remove("b")
			_, ok, err := s.Read("b")
			require.NoError(t, err)
			assert.False(t, ok)

			all, err := s.ReadAll()
			require.NoError(t, err)
			assert.Len(t, all, 2)

			s.Reset()
			assert.True(t, s.IsEmpty())
			all, err = s.ReadAll()
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestStores_SaveNilRecord(t *testing.T) {
	for name, s := range kinds(t) {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, s.Save(nil), domain.ErrNotIdentifiable)
			assert.ErrorIs(t, s.SaveAll([]*secret{{ID: "a"}, nil}), domain.ErrNotIdentifiable)

			all, err := s.ReadAll()
			require.NoError(t, err)
			assert.Len(t, all, 1, "records before the nil one are kept")
		})
	}
}
