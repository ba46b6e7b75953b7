package services

import (
	"droppcv_backend/internal/models"
	"droppcv_backend/internal/repositories"
	"droppcv_backend/internal/services/dto"
	"droppcv_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SearchService interface {
	SearchEmployees(db *gorm.DB, callerType models.UserType, req *dto.SearchEmployeesRequest) ([]dto.UserResponse, error)
}

type SearchServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewSearchService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) SearchService {
	return &SearchServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// SearchEmployees - поиск соискателей по фильтрам анкеты.
// Доступен только работодателям. Фильтры по тексту уходят в SQL,
// salary_expectation проверяется здесь, поверх выборки.
func (s *SearchServiceImpl) SearchEmployees(db *gorm.DB, callerType models.UserType, req *dto.SearchEmployeesRequest) ([]dto.UserResponse, error) {
	if callerType != models.UserTypeEmployer {
		return nil, apperrors.ErrEmployerOnly
	}

	var matchSalary salaryPredicate
	if req.SalaryExpectation != "" {
		predicate, ok := parseSalaryQuery(req.SalaryExpectation)
		if !ok {
			return nil, apperrors.ErrInvalidSalaryQuery
		}
		matchSalary = predicate
	}

	criteria := repositories.EmployeeSearchCriteria{
		Location:       req.Location,
		Country:        req.Country,
		ServiceID:      req.ServiceID,
		WorkExperience: req.WorkExperience,
	}

	profiles, err := s.profileRepo.FilterEmployeeProfiles(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	userIDs := make([]string, 0, len(profiles))
	for i := range profiles {
		if matchSalary != nil && !matchSalary(profiles[i].SalaryExpectation) {
			continue
		}
		userIDs = append(userIDs, profiles[i].UserID)
	}

	users, err := s.userRepo.FindByIDs(db, userIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewUserResponseList(users), nil
}
