package item

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/osse101/BrandishPet_Go/configs"
	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/logger"
	"github.com/osse101/BrandishPet_Go/internal/utils"
	"github.com/osse101/BrandishPet_Go/internal/validation"
)

// Config is the on-disk shape of the shop catalog
type Config struct {
	Version     string `json:"version" validate:"required"`
	Description string `json:"description"`
	Items       []Def  `json:"items" validate:"required,min=1,dive"`
}

// Def is a single catalog entry as written in JSON
type Def struct {
	ID          string             `json:"id" validate:"required"`
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description"`
	Category    string             `json:"category" validate:"required,oneof=food toy medicine accessory furniture"`
	Price       int                `json:"price" validate:"min=0"`
	Equippable  bool               `json:"equippable"`
	Effect      map[string]float64 `json:"effect,omitempty"`
}

// Load reads the catalog at path, or the embedded default when path is empty
func Load(ctx context.Context, path string) (*Catalog, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		path = "embedded:" + configs.CatalogPath
		data, err = configs.FS.ReadFile(configs.CatalogPath)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	catalog, err := Parse(data)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "source", path, "items", catalog.Len())
	return catalog, nil
}

// Parse validates raw catalog JSON against the schema and the struct rules
func Parse(data []byte) (*Catalog, error) {
	schemas := validation.NewSchemaValidator(configs.FS)
	if err := schemas.ValidateBytes(data, configs.CatalogSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaCheckFailed, err)
	}

	var cfg Config
	if err := utils.DecodeJSONStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	return New(cfg)
}

// New builds a catalog from an already decoded config
func New(cfg Config) (*Catalog, error) {
	if err := validation.Get().ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidCatalog, err)
	}

	c := &Catalog{byID: make(map[string]int, len(cfg.Items))}
	for _, def := range cfg.Items {
		if _, dup := c.byID[def.ID]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateItem, domain.ErrDuplicateItemID, def.ID)
		}
		it := def.toDomain()
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}
	return c, nil
}

func (d Def) toDomain() domain.Item {
	var effect domain.StatDeltas
	if len(d.Effect) > 0 {
		effect = make(domain.StatDeltas, len(d.Effect))
		for k, v := range d.Effect {
			effect[k] = v
		}
	}
	return domain.Item{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Category:    domain.ItemCategory(d.Category),
		Price:       d.Price,
		Equippable:  d.Equippable,
		Effect:      effect,
	}
}

// Catalog is the read-only set of items the shop sells
type Catalog struct {
	items []domain.Item
	byID  map[string]int
}

// Get returns the item with id
func (c *Catalog) Get(id string) (domain.Item, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Item{}, fmt.Errorf(ErrFmtUnknownItem, domain.ErrItemNotFound, id)
	}
	return c.items[i], nil
}

// All returns every item in catalog order
func (c *Catalog) All() []domain.Item {
	return append([]domain.Item(nil), c.items...)
}

// ByCategory returns the items of one category sorted by price
func (c *Catalog) ByCategory(cat domain.ItemCategory) []domain.Item {
	var out []domain.Item
	for _, it := range c.items {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}
