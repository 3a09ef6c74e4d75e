package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnglishCatalog(t *testing.T) {
	c := NewCatalog("en")

	assert.Equal(t, "Local Files (1)", c.LocalFilesTab(1))
	assert.Equal(t, "Local Files (12)", c.LocalFilesTab(12))
	assert.Equal(t, "Delete", c.DeleteFile())
	assert.Equal(t, "Please select an item", c.NoSelectError())
	assert.Equal(t, "Delete a.xml?", c.DeleteConfirm("a.xml"))
	assert.Equal(t, "a.xml deleted", c.DeletedOK("a.xml"))
	assert.Equal(t, "a.xml could not be deleted", c.DeletedError("a.xml"))
	assert.Equal(t, "Yes", c.Yes())
	assert.Equal(t, "No", c.No())
}

func TestSpanishCatalog(t *testing.T) {
	c := NewCatalog("es")

	assert.Equal(t, "Archivos locales (3)", c.LocalFilesTab(3))
	assert.Equal(t, "Sí", c.Yes())
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	c := NewCatalog("xx")
	assert.Equal(t, "Delete", c.DeleteFile())
}
