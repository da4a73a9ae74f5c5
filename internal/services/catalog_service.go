package services

import (
	"errors"
	"log"

	"super_crunch/internal/models"
	redisclient "super_crunch/internal/redis"
	"super_crunch/internal/repository"
)

// CatalogCache caches the visible-dish list. Implemented by the redis
// client; cache failures degrade to database reads.
type CatalogCache interface {
	GetCatalog() ([]models.Dish, error)
	SetCatalog(dishes []models.Dish) error
	InvalidateCatalog() error
}

type CatalogService interface {
	VisibleDishes() ([]models.Dish, error)
	AllDishes() ([]models.Dish, error)
	CreateDish(dish *models.Dish) error
	UpdateDish(dish *models.Dish) error
	DeleteDish(id uint) error
}

type catalogService struct {
	dishRepo repository.DishRepository
	cache    CatalogCache
}

func NewCatalogService(dishRepo repository.DishRepository, cache CatalogCache) CatalogService {
	return &catalogService{dishRepo: dishRepo, cache: cache}
}

// VisibleDishes serves the storefront menu: visible dishes only, cached.
func (s *catalogService) VisibleDishes() ([]models.Dish, error) {
	if s.cache != nil {
		dishes, err := s.cache.GetCatalog()
		if err == nil {
			return dishes, nil
		}
		if !errors.Is(err, redisclient.ErrCacheMiss) {
			log.Printf("catalog cache get error: %v", err)
		}
	}

	dishes, err := s.dishRepo.GetVisible()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCatalog(dishes); err != nil {
			log.Printf("catalog cache set error: %v", err)
		}
	}
	return dishes, nil
}

func (s *catalogService) AllDishes() ([]models.Dish, error) {
	return s.dishRepo.GetAll()
}

func (s *catalogService) CreateDish(dish *models.Dish) error {
	if err := s.dishRepo.Create(dish); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *catalogService) UpdateDish(dish *models.Dish) error {
	if err := s.dishRepo.Update(dish); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *catalogService) DeleteDish(id uint) error {
	if err := s.dishRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *catalogService) invalidateCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCatalog(); err != nil {
		log.Printf("catalog cache invalidate error: %v", err)
	}
}
