package editor

import (
	"github.com/arthur-debert/fieldmatch/pkg/errors"
	"github.com/arthur-debert/fieldmatch/pkg/matchers"
	"github.com/arthur-debert/fieldmatch/pkg/registry"
	"github.com/arthur-debert/fieldmatch/pkg/types"
)

// Catalog is the sealed, ordered set of matcher UI items
type Catalog struct {
	items registry.Registry[MatcherUIItem]
}

// NewCatalog builds the UI items for every matcher in reg
func NewCatalog(reg *matchers.Registry) (*Catalog, error) {
	items, err := pickerItems(reg)
	if err != nil {
		return nil, err
	}

	readOnly, err := ReadOnlyFieldMatcherItem(reg)
	if err != nil {
		return nil, err
	}
	items = append(items, readOnly)

	c := &Catalog{items: registry.New[MatcherUIItem]()}
	for _, item := range items {
		if err := c.items.Register(item.ID, item); err != nil {
			return nil, err
		}
	}
	c.items.Seal()
	return c, nil
}

// Items returns every item in registration order
func (c *Catalog) Items() []MatcherUIItem {
	return c.items.Values()
}

// Pickable returns the items offered when creating a rule
func (c *Catalog) Pickable() []MatcherUIItem {
	var out []MatcherUIItem
	for _, item := range c.items.Values() {
		if !item.ExcludeFromPicker {
			out = append(out, item)
		}
	}
	return out
}

// Get looks up an item by matcher id
func (c *Catalog) Get(id string) (MatcherUIItem, error) {
	item, err := c.items.Get(id)
	if err != nil {
		return MatcherUIItem{}, errors.Wrapf(err, errors.ErrMatcherNotFound, "no editor for matcher '%s'", id)
	}
	return item, nil
}

// EditorView is what an editor renders for one matcher config
type EditorView struct {
	// MatcherID is the matcher whose editor is shown
	MatcherID string `json:"matcherId" yaml:"matcherId" toml:"matcherId"`

	Label  string `json:"label" yaml:"label" toml:"label"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty" toml:"prefix,omitempty"`

	// ReadOnly disables editing
	ReadOnly bool `json:"readOnly" yaml:"readOnly" toml:"readOnly"`
}

// Describe resolves the view of config. A readOnly config is shown with the
// editor of its inner matcher, locked, under the wrapper's prefix.
func (c *Catalog) Describe(config types.MatcherConfig) (EditorView, error) {
	item, err := c.Get(config.ID)
	if err != nil {
		return EditorView{}, err
	}

	if item.ID != matchers.ReadOnlyID {
		return EditorView{
			MatcherID: item.ID,
			Label:     item.OptionsToLabel(config.Options),
		}, nil
	}

	opts, err := matchers.DecodeReadOnlyOptions(config.Options)
	if err != nil {
		return EditorView{}, err
	}

	view, err := c.Describe(types.MatcherConfig{ID: opts.InnerID, Options: opts.InnerOptions})
	if err != nil {
		return EditorView{}, err
	}
	view.ReadOnly = true
	if opts.Prefix != "" {
		view.Prefix = opts.Prefix
	}
	return view, nil
}
