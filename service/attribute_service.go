// api/service/attribute_service.go
package service

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/solistore/gateway/api/model"
	"github.com/solistore/gateway/api/util"
)

type AttributeStore interface {
	ListAttributes(ctx context.Context, limit, offset int) ([]*model.Attribute, error)
	GetAttribute(ctx context.Context, id uint) (*model.Attribute, error)
	CreateAttribute(ctx context.Context, attribute *model.Attribute) (*model.Attribute, error)
	UpdateAttribute(ctx context.Context, attribute *model.Attribute) (*model.Attribute, error)
	DeleteAttribute(ctx context.Context, id uint) error
	ListAttributeValues(ctx context.Context, attributeID uint, limit, offset int) ([]*model.AttributeValue, error)
	CreateAttributeValue(ctx context.Context, attributeID uint, value *model.AttributeValue) (*model.AttributeValue, error)
	DeleteAttributeValue(ctx context.Context, attributeID, valueID uint) error
}

type IAttributeService interface {
	ListAttributes(ctx context.Context, limit, offset int) ([]*model.Attribute, error)
	GetAttribute(ctx context.Context, id uint) (*model.Attribute, error)
	CreateAttribute(ctx context.Context, attribute *model.Attribute) (*model.Attribute, error)
	UpdateAttribute(ctx context.Context, attribute *model.Attribute) (*model.Attribute, error)
	DeleteAttribute(ctx context.Context, id uint) error
	ListAttributeValues(ctx context.Context, attributeID uint, limit, offset int) ([]*model.AttributeValue, error)
	CreateAttributeValue(ctx context.Context, attributeID uint, value *model.AttributeValue) (*model.AttributeValue, error)
	DeleteAttributeValue(ctx context.Context, attributeID, valueID uint) error
}

type AttributeService struct {
	store AttributeStore
	cache *util.CacheService
}

var _ IAttributeService = &AttributeService{}

func NewAttributeService(store AttributeStore, cache *util.CacheService) *AttributeService {
	return &AttributeService{store: store, cache: cache}
}

func (s *AttributeService) ListAttributes(ctx context.Context, limit, offset int) ([]*model.Attribute, error) {
	key := util.CacheKey("attributes", "list_attributes", map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	return util.GetOrSet(ctx, s.cache, key, viper.GetDuration("cache.attributeTTL"),
		func(ctx context.Context) ([]*model.Attribute, error) {
			return s.store.ListAttributes(ctx, limit, offset)
		})
}

func (s *AttributeService) GetAttribute(ctx context.Context, id uint) (*model.Attribute, error) {
	key := fmt.Sprintf("attribute:get_attribute:%d", id)
	return util.GetOrSet(ctx, s.cache, key, viper.GetDuration("cache.attributeTTL"),
		func(ctx context.Context) (*model.Attribute, error) {
			return s.store.GetAttribute(ctx, id)
		})
}

func (s *AttributeService) CreateAttribute(ctx context.Context, attribute *model.Attribute) (*model.Attribute, error) {
	created, err := s.store.CreateAttribute(ctx, attribute)
	if err != nil {
		return nil, err
	}

	s.invalidateAttribute(ctx, created.ID)
	return created, nil
}

func (s *AttributeService) UpdateAttribute(ctx context.Context, attribute *model.Attribute) (*model.Attribute, error) {
	updated, err := s.store.UpdateAttribute(ctx, attribute)
	if err != nil {
		return nil, err
	}

	s.invalidateAttribute(ctx, updated.ID)
	return updated, nil
}

func (s *AttributeService) DeleteAttribute(ctx context.Context, id uint) error {
	if err := s.store.DeleteAttribute(ctx, id); err != nil {
		return err
	}

	s.invalidateAttribute(ctx, id)
	return nil
}

func (s *AttributeService) ListAttributeValues(ctx context.Context, attributeID uint, limit, offset int) ([]*model.AttributeValue, error) {
	key := util.CacheKey(fmt.Sprintf("attribute:%d:values", attributeID), "list", map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	return util.GetOrSet(ctx, s.cache, key, viper.GetDuration("cache.attributeTTL"),
		func(ctx context.Context) ([]*model.AttributeValue, error) {
			return s.store.ListAttributeValues(ctx, attributeID, limit, offset)
		})
}

func (s *AttributeService) CreateAttributeValue(ctx context.Context, attributeID uint, value *model.AttributeValue) (*model.AttributeValue, error) {
	created, err := s.store.CreateAttributeValue(ctx, attributeID, value)
	if err != nil {
		return nil, err
	}

	s.invalidateAttribute(ctx, attributeID)
	return created, nil
}

func (s *AttributeService) DeleteAttributeValue(ctx context.Context, attributeID, valueID uint) error {
	if err := s.store.DeleteAttributeValue(ctx, attributeID, valueID); err != nil {
		return err
	}

	s.invalidateAttribute(ctx, attributeID)
	return nil
}

// invalidateAttribute clears the shared listing plus everything keyed under
// the attribute: its own entry and its value listings.
func (s *AttributeService) invalidateAttribute(ctx context.Context, id uint) {
	s.cache.Invalidate(ctx,
		"attributes:*",
		fmt.Sprintf("attribute:get_attribute:%d", id),
		fmt.Sprintf("attribute:%d:values:*", id))
}
