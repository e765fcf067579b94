package services

import (
	"terek_backend/internal/appErrors"
	"terek_backend/internal/models"
	"terek_backend/internal/repositories"
	"terek_backend/internal/services/dto"
)

// LocationService serves the public planting-site catalog and the admin CRUD
// behind it.
type LocationService interface {
	List() ([]models.Location, error)
	Get(id string) (*models.Location, error)
	Create(req *dto.CreateLocationRequest) (*models.Location, error)
	Update(id string, req *dto.UpdateLocationRequest) (*models.Location, error)
	Delete(id string) error
}

type PackageService interface {
	List() ([]models.Package, error)
	Get(id string) (*models.Package, error)
	Create(req *dto.CreatePackageRequest) (*models.Package, error)
	Update(id string, req *dto.UpdatePackageRequest) (*models.Package, error)
	Delete(id string) error
}

type LocationServiceImpl struct {
	locationRepo repositories.LocationRepository
}

func NewLocationService(locationRepo repositories.LocationRepository) LocationService {
	return &LocationServiceImpl{locationRepo: locationRepo}
}

func (s *LocationServiceImpl) List() ([]models.Location, error) {
	locations, err := s.locationRepo.FindAll()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return locations, nil
}

func (s *LocationServiceImpl) Get(id string) (*models.Location, error) {
	location, err := s.locationRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrLocationNotFound) {
			return nil, appErrors.ErrLocationNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return location, nil
}

func (s *LocationServiceImpl) Create(req *dto.CreateLocationRequest) (*models.Location, error) {
	location := &models.Location{
		Name:          req.Name,
		Description:   req.Description,
		AreaHectares:  req.AreaHectares,
		Coordinates:   req.Coordinates,
		ImageURL:      req.ImageURL,
		Status:        "active",
		CapacityTrees: req.CapacityTrees,
	}
	if err := s.locationRepo.Create(location); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return location, nil
}

func (s *LocationServiceImpl) Update(id string, req *dto.UpdateLocationRequest) (*models.Location, error) {
	location, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Description != nil {
		location.Description = *req.Description
	}
	if req.AreaHectares != nil {
		location.AreaHectares = *req.AreaHectares
	}
	if req.Coordinates != nil {
		location.Coordinates = *req.Coordinates
	}
	if req.ImageURL != nil {
		location.ImageURL = *req.ImageURL
	}
	if req.Status != nil {
		location.Status = *req.Status
	}
	if req.CapacityTrees != nil {
		location.CapacityTrees = *req.CapacityTrees
	}
	if req.PlantedTrees != nil {
		location.PlantedTrees = *req.PlantedTrees
	}

	if err := s.locationRepo.Save(location); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return location, nil
}

func (s *LocationServiceImpl) Delete(id string) error {
	if err := s.locationRepo.Delete(id); err != nil {
		if appErrors.Is(err, repositories.ErrLocationNotFound) {
			return appErrors.ErrLocationNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

type PackageServiceImpl struct {
	packageRepo repositories.PackageRepository
}

func NewPackageService(packageRepo repositories.PackageRepository) PackageService {
	return &PackageServiceImpl{packageRepo: packageRepo}
}

func (s *PackageServiceImpl) List() ([]models.Package, error) {
	packages, err := s.packageRepo.FindAll()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return packages, nil
}

func (s *PackageServiceImpl) Get(id string) (*models.Package, error) {
	pkg, err := s.packageRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrPackageNotFound) {
			return nil, appErrors.ErrPackageNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return pkg, nil
}

func (s *PackageServiceImpl) Create(req *dto.CreatePackageRequest) (*models.Package, error) {
	pkg := &models.Package{
		Name:        req.Name,
		TreeCount:   req.TreeCount,
		Price:       req.Price,
		Description: req.Description,
		Popular:     req.Popular,
	}
	if err := s.packageRepo.Create(pkg); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return pkg, nil
}

func (s *PackageServiceImpl) Update(id string, req *dto.UpdatePackageRequest) (*models.Package, error) {
	pkg, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.TreeCount != nil {
		pkg.TreeCount = *req.TreeCount
	}
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.Popular != nil {
		pkg.Popular = *req.Popular
	}

	if err := s.packageRepo.Save(pkg); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return pkg, nil
}

func (s *PackageServiceImpl) Delete(id string) error {
	if err := s.packageRepo.Delete(id); err != nil {
		if appErrors.Is(err, repositories.ErrPackageNotFound) {
			return appErrors.ErrPackageNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}
