package parser

import (
	"context"
	"errors"
	"fmt"

	"github.com/Beka01247/cafe/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// DefaultReadRange covers columns A (id) to M (choice price).
const DefaultReadRange = "A:M"

var ErrEmptySheet = errors.New("no data found in spreadsheet")

type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*GoogleSheetsParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

func (p *GoogleSheetsParser) ParseMenu(ctx context.Context, spreadsheetID, readRange string) ([]domain.FoodItem, error) {
	if readRange == "" {
		readRange = DefaultReadRange
	}

	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	return ParseRows(resp.Values)
}
