// Package i18n holds the user-facing strings of the form list and renders
// them for the configured language.
package i18n

import (
	"formkeep/internal/log"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	LocalFilesTab = "local_files_tab"
	DeleteFile    = "delete_file"
	NoSelectError = "noselect_error"
	DeleteConfirm = "delete_confirm"
	DeletedOK     = "form_deleted_ok"
	DeletedError  = "form_deleted_error"
	Yes           = "yes"
	No            = "no"
	NoItems       = "no_items"
)

var english = []*goi18n.Message{
	{ID: LocalFilesTab, One: "Local Files ({{.Count}})", Other: "Local Files ({{.Count}})"},
	{ID: DeleteFile, Other: "Delete"},
	{ID: NoSelectError, Other: "Please select an item"},
	{ID: DeleteConfirm, Other: "Delete {{.Name}}?"},
	{ID: DeletedOK, Other: "{{.Name}} deleted"},
	{ID: DeletedError, Other: "{{.Name}} could not be deleted"},
	{ID: Yes, Other: "Yes"},
	{ID: No, Other: "No"},
	{ID: NoItems, Other: "No forms or saved instances"},
}

var spanish = []*goi18n.Message{
	{ID: LocalFilesTab, One: "Archivos locales ({{.Count}})", Other: "Archivos locales ({{.Count}})"},
	{ID: DeleteFile, Other: "Eliminar"},
	{ID: NoSelectError, Other: "Seleccione un elemento"},
	{ID: DeleteConfirm, Other: "¿Eliminar {{.Name}}?"},
	{ID: DeletedOK, Other: "{{.Name}} eliminado"},
	{ID: DeletedError, Other: "No se pudo eliminar {{.Name}}"},
	{ID: Yes, Other: "Sí"},
	{ID: No, Other: "No"},
	{ID: NoItems, Other: "No hay formularios ni instancias guardadas"},
}

// Catalog renders messages in one language, falling back to English.
type Catalog struct {
	localizer *goi18n.Localizer
}

// NewCatalog returns a catalog for lang, e.g. "en" or "es".
func NewCatalog(lang string) *Catalog {
	bundle := goi18n.NewBundle(language.English)
	bundle.AddMessages(language.English, english...)
	bundle.AddMessages(language.Spanish, spanish...)
	return &Catalog{localizer: goi18n.NewLocalizer(bundle, lang, "en")}
}

func (c *Catalog) localize(id string, data map[string]interface{}, count interface{}) string {
	s, err := c.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
		PluralCount:  count,
	})
	if err != nil {
		log.Warnf("missing message %s: %v", id, err)
		return id
	}
	return s
}

// LocalFilesTab is the list tab header carrying the entry count.
func (c *Catalog) LocalFilesTab(count int) string {
	return c.localize(LocalFilesTab, map[string]interface{}{"Count": count}, count)
}

// DeleteFile is the title of the delete menu action.
func (c *Catalog) DeleteFile() string { return c.localize(DeleteFile, nil, nil) }

// NoSelectError is shown when delete is requested with nothing selected.
func (c *Catalog) NoSelectError() string { return c.localize(NoSelectError, nil, nil) }

// Yes labels the confirming button.
func (c *Catalog) Yes() string { return c.localize(Yes, nil, nil) }

// No labels the declining button.
func (c *Catalog) No() string { return c.localize(No, nil, nil) }

// NoItems is the empty-state text.
func (c *Catalog) NoItems() string { return c.localize(NoItems, nil, nil) }

// DeleteConfirm asks whether name should be deleted.
func (c *Catalog) DeleteConfirm(name string) string {
	return c.localize(DeleteConfirm, map[string]interface{}{"Name": name}, nil)
}

// DeletedOK reports a successful delete of name.
func (c *Catalog) DeletedOK(name string) string {
	return c.localize(DeletedOK, map[string]interface{}{"Name": name}, nil)
}

// DeletedError reports that name could not be deleted.
func (c *Catalog) DeletedError(name string) string {
	return c.localize(DeletedError, map[string]interface{}{"Name": name}, nil)
}
