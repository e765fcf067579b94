package repositories

import (
	"errors"

	"terek_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDonationNotFound = errors.New("donation not found")

type DonationRepository interface {
	Create(donation *models.Donation) error
	FindByID(id string) (*models.Donation, error)
	FindByUser(userID string) ([]models.Donation, error)
	FindAll(limit, offset int) ([]models.Donation, error)

	// SetPaymentOrder stores the gateway order id and moves the donation to
	// awaiting_payment in one update.
	SetPaymentOrder(id, orderID string) error

	// Transition moves a donation into a terminal status. The update is
	// conditional on the current status not already being terminal, so
	// redundant webhook deliveries and concurrent polls converge on a single
	// effective transition. Returns true when this call performed the change.
	Transition(id string, to models.DonationStatus) (bool, error)

	// RelinkByEmail attaches all donations with the given email and no user
	// reference to the user. The filter on user_id IS NULL makes redundant
	// concurrent sweeps idempotent.
	RelinkByEmail(email, userID string) (int64, error)

	UpdateStatus(id string, status models.DonationStatus) error
	Summary() (*DonationSummary, error)
}

type DonationSummary struct {
	TotalDonations int64                      `json:"total_donations"`
	PendingCount   int64                      `json:"pending_count"`
	AwaitingCount  int64                      `json:"awaiting_count"`
	CompletedCount int64                      `json:"completed_count"`
	TotalRevenue   int64                      `json:"total_revenue"`
	TreesPlanted   int64                      `json:"trees_planted"`
	ByLocation     map[string]LocationSummary `json:"by_location"`
}

type LocationSummary struct {
	Donations int64 `json:"donations"`
	Trees     int64 `json:"trees"`
	Revenue   int64 `json:"revenue"`
}

type DonationRepositoryImpl struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &DonationRepositoryImpl{db: db}
}

func (r *DonationRepositoryImpl) Create(donation *models.Donation) error {
	return r.db.Create(donation).Error
}

func (r *DonationRepositoryImpl) FindByID(id string) (*models.Donation, error) {
	var donation models.Donation
	err := r.db.Preload("Location").Preload("Package").Preload("Certificate").
		First(&donation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}
	return &donation, nil
}

func (r *DonationRepositoryImpl) FindByUser(userID string) ([]models.Donation, error) {
	var donations []models.Donation
	err := r.db.Preload("Location").Preload("Certificate").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&donations).Error
	return donations, err
}

func (r *DonationRepositoryImpl) FindAll(limit, offset int) ([]models.Donation, error) {
	var donations []models.Donation
	err := r.db.Preload("Location").
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&donations).Error
	return donations, err
}

func (r *DonationRepositoryImpl) SetPaymentOrder(id, orderID string) error {
	result := r.db.Model(&models.Donation{}).Where("id = ?", id).Updates(map[string]interface{}{
		"payment_order_id": orderID,
		"status":           models.DonationStatusAwaitingPayment,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDonationNotFound
	}
	return nil
}

func (r *DonationRepositoryImpl) Transition(id string, to models.DonationStatus) (bool, error) {
	result := r.db.Model(&models.Donation{}).
		Where("id = ? AND status NOT IN ?", id, []models.DonationStatus{
			models.DonationStatusCompleted,
			models.DonationStatusFailed,
			models.DonationStatusCancelled,
		}).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *DonationRepositoryImpl) RelinkByEmail(email, userID string) (int64, error) {
	result := r.db.Model(&models.Donation{}).
		Where("email = ? AND user_id IS NULL", email).
		Update("user_id", userID)
	return result.RowsAffected, result.Error
}

func (r *DonationRepositoryImpl) UpdateStatus(id string, status models.DonationStatus) error {
	result := r.db.Model(&models.Donation{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDonationNotFound
	}
	return nil
}

func (r *DonationRepositoryImpl) Summary() (*DonationSummary, error) {
	var summary DonationSummary

	if err := r.db.Model(&models.Donation{}).Count(&summary.TotalDonations).Error; err != nil {
		return nil, err
	}

	counts := map[models.DonationStatus]*int64{
		models.DonationStatusPending:         &summary.PendingCount,
		models.DonationStatusAwaitingPayment: &summary.AwaitingCount,
		models.DonationStatusCompleted:       &summary.CompletedCount,
	}
	for status, dst := range counts {
		if err := r.db.Model(&models.Donation{}).Where("status = ?", status).Count(dst).Error; err != nil {
			return nil, err
		}
	}

	row := r.db.Model(&models.Donation{}).
		Where("status = ?", models.DonationStatusCompleted).
		Select("COALESCE(SUM(amount), 0), COALESCE(SUM(tree_count), 0)").
		Row()
	if err := row.Scan(&summary.TotalRevenue, &summary.TreesPlanted); err != nil {
		return nil, err
	}

	type locationRow struct {
		Name      string
		Donations int64
		Trees     int64
		Revenue   int64
	}
	var rows []locationRow
	err := r.db.Model(&models.Donation{}).
		Select("locations.name AS name, COUNT(donations.id) AS donations, COALESCE(SUM(donations.tree_count), 0) AS trees, COALESCE(SUM(donations.amount), 0) AS revenue").
		Joins("JOIN locations ON locations.id = donations.location_id").
		Group("locations.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summary.ByLocation = make(map[string]LocationSummary, len(rows))
	for _, row := range rows {
		summary.ByLocation[row.Name] = LocationSummary{
			Donations: row.Donations,
			Trees:     row.Trees,
			Revenue:   row.Revenue,
		}
	}

	return &summary, nil
}
