package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageList_ValueDropsHolesAndCaps(t *testing.T) {
	list := ImageList{"/a.jpg", "", "  ", "/b.jpg", "/c.jpg", "/d.jpg", "/e.jpg"}

	v, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, `["/a.jpg","/b.jpg","/c.jpg","/d.jpg"]`, v)
}

func TestImageList_Scan(t *testing.T) {
	var list ImageList
	require.NoError(t, list.Scan(`["/a.jpg","/b.jpg"]`))
	assert.Equal(t, ImageList{"/a.jpg", "/b.jpg"}, list)
	assert.Equal(t, "/a.jpg", list.Thumbnail())

	var empty ImageList
	require.NoError(t, empty.Scan(nil))
	assert.Empty(t, empty)
	assert.Equal(t, "", empty.Thumbnail())
}
