package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/srgjo27/cineticket/internal/core/domain"
)

func (c *Client) ListPromotions(ctx context.Context) ([]domain.Promotion, error) {
	var out []promotionDTO
	if err := c.getJSON(ctx, "/promotions", nil, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, promotionDTO.toDomain), nil
}

func (c *Client) ListActivePromotions(ctx context.Context) ([]domain.Promotion, error) {
	var out []promotionDTO
	if err := c.getJSON(ctx, "/promotions/active", nil, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, promotionDTO.toDomain), nil
}

// ValidatePromotion asks the backend whether code is usable. The answer is
// either {valid, promotion}, a {data} envelope or the promotion itself.
func (c *Client) ValidatePromotion(ctx context.Context, code string) (*domain.Promotion, error) {
	body, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/promotions/validate",
		body:   map[string]string{"code": code},
	})
	if err != nil {
		return nil, err
	}

	var wrapped struct {
		Valid     *bool           `json:"valid"`
		Message   string          `json:"message"`
		Promotion json.RawMessage `json:"promotion"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("decode promotion validation: %w", err)
	}
	if wrapped.Valid != nil && !*wrapped.Valid {
		return nil, &domain.Error{Kind: domain.KindValidation, Message: wrapped.Message, Err: domain.ErrPromotionInvalid}
	}

	var dto promotionDTO
	if len(wrapped.Promotion) > 0 && string(wrapped.Promotion) != "null" {
		err = json.Unmarshal(wrapped.Promotion, &dto)
	} else {
		err = decodeData(body, &dto)
	}
	if err != nil {
		return nil, fmt.Errorf("decode promotion: %w", err)
	}
	if dto.Code == "" && dto.MongoID == "" && dto.ID == "" {
		return nil, &domain.Error{Kind: domain.KindValidation, Message: "empty promotion in response", Err: domain.ErrPromotionInvalid}
	}
	p := dto.toDomain()
	return &p, nil
}
