package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const defaultAirtableURL = "https://api.airtable.com/v0"

type AirtableConfig struct {
	BaseURL string
	BaseID  string
	Table   string
	Token   string
	Timeout time.Duration
	// DefaultStock applies to records without a stock field.
	DefaultStock int
}

// AirtableSource reads menu rows from an Airtable table through the records
// API, following offset pagination.
type AirtableSource struct {
	cfg    AirtableConfig
	client *http.Client
	logger *zap.SugaredLogger
}

func NewAirtableSource(cfg AirtableConfig, logger *zap.SugaredLogger) *AirtableSource {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultAirtableURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &AirtableSource{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type airtablePage struct {
	Records []airtableRecord `json:"records"`
	Offset  string           `json:"offset"`
}

type airtableRecord struct {
	ID     string                 `json:"id"`
	Fields map[string]interface{} `json:"fields"`
}

type airtableFields struct {
	ID          string      `mapstructure:"id"`
	Name        string      `mapstructure:"name"`
	Description string      `mapstructure:"description"`
	Price       string      `mapstructure:"price"`
	Category    string      `mapstructure:"category"`
	Image       string      `mapstructure:"image"`
	IsVeg       bool        `mapstructure:"is_veg"`
	Stock       *int        `mapstructure:"stock"`
	Popular     bool        `mapstructure:"popular"`
	Options     interface{} `mapstructure:"options"`
}

func (s *AirtableSource) Name() string {
	return SourceAirtable
}

func (s *AirtableSource) Items(ctx context.Context) ([]domain.FoodItem, error) {
	var (
		items  []domain.FoodItem
		offset string
	)

	for {
		page, err := s.fetchPage(ctx, offset)
		if err != nil {
			return nil, err
		}

		for _, rec := range page.Records {
			item, err := s.decode(rec)
			if err != nil {
				s.logger.Warnw("skipping airtable record", "record_id", rec.ID, "error", err)
				continue
			}
			items = append(items, item)
		}

		if page.Offset == "" {
			break
		}
		offset = page.Offset
	}

	if items == nil {
		items = []domain.FoodItem{}
	}
	return items, nil
}

func (s *AirtableSource) Item(ctx context.Context, id string) (*domain.FoodItem, error) {
	return findItem(ctx, s, id)
}

func (s *AirtableSource) fetchPage(ctx context.Context, offset string) (*airtablePage, error) {
	endpoint := fmt.Sprintf("%s/%s/%s",
		strings.TrimRight(s.cfg.BaseURL, "/"),
		url.PathEscape(s.cfg.BaseID),
		url.PathEscape(s.cfg.Table),
	)
	if offset != "" {
		endpoint += "?" + url.Values{"offset": {offset}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build airtable request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu from airtable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("airtable responded with status %d", resp.StatusCode)
	}

	var page airtablePage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode airtable response: %w", err)
	}

	return &page, nil
}

func (s *AirtableSource) decode(rec airtableRecord) (domain.FoodItem, error) {
	var f airtableFields
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &f,
		MatchName: func(mapKey, fieldName string) bool {
			return normalizeKey(mapKey) == normalizeKey(fieldName)
		},
	})
	if err != nil {
		return domain.FoodItem{}, err
	}
	if err := decoder.Decode(rec.Fields); err != nil {
		return domain.FoodItem{}, fmt.Errorf("failed to decode fields: %w", err)
	}

	id := f.ID
	if id == "" {
		id = rec.ID
	}

	price, err := parseAmount(f.Price)
	if err != nil {
		return domain.FoodItem{}, domain.NewValidationError("price", err.Error())
	}

	category, _ := domain.ParseCategory(f.Category)

	stock := s.cfg.DefaultStock
	if f.Stock != nil {
		stock = *f.Stock
	}

	options, err := decodeOptions(f.Options)
	if err != nil {
		return domain.FoodItem{}, err
	}

	item := domain.FoodItem{
		ID:          id,
		Name:        f.Name,
		Description: f.Description,
		Price:       price,
		Category:    category,
		Image:       f.Image,
		IsVeg:       f.IsVeg,
		Stock:       stock,
		Popular:     f.Popular,
		Options:     options,
	}
	if err := item.Validate(); err != nil {
		return domain.FoodItem{}, err
	}
	return item, nil
}

// decodeOptions accepts the options column either as JSON text or as an
// already structured value.
func decodeOptions(raw interface{}) ([]domain.FoodOption, error) {
	options := []domain.FoodOption{}

	var data []byte
	switch v := raw.(type) {
	case nil:
		return options, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return options, nil
		}
		data = []byte(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, domain.NewValidationError("options", err.Error())
		}
		data = b
	}

	if err := json.Unmarshal(data, &options); err != nil {
		return nil, domain.NewValidationError("options", "options must be a JSON list: "+err.Error())
	}
	for i := range options {
		if options[i].Type == "" {
			options[i].Type = domain.OptionCustom
		}
	}
	return options, nil
}

// normalizeKey lets "Is Veg", "isVeg" and "is_veg" address the same field.
func normalizeKey(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer("_", "", " ", "", "-", "").Replace(s)
}
