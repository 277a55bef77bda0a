package services

import (
	"fmt"
	"strings"

	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/entity"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/pkg/apperr"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/repository"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

const qrImageSize = 256

type TableService struct {
	DB          *gorm.DB
	Repo        *repository.TableRepository
	SiteBaseURL string
}

func NewTableService(db *gorm.DB, repo *repository.TableRepository, siteBaseURL string) *TableService {
	return &TableService{DB: db, Repo: repo, SiteBaseURL: strings.TrimRight(siteBaseURL, "/")}
}

type TableIn struct {
	Number      int    `json:"number" binding:"required,min=1"`
	Description string `json:"description"`
}

func (s *TableService) List(number *int) ([]entity.Table, error) {
	return s.Repo.List(number)
}

func (s *TableService) Get(id uint) (*entity.Table, error) {
	t, err := s.Repo.Get(id)
	if err != nil {
		return nil, mapNotFound(err, "table")
	}
	return t, nil
}

// Resolve looks a table up by the public identifier from its QR code.
// Malformed input is reported as not-found, never as a parse failure:
// this path is fed straight from the URL and must not leak format hints.
func (s *TableService) Resolve(publicID string) (*entity.Table, error) {
	if _, err := uuid.Parse(publicID); err != nil {
		return nil, apperr.NotFound("table")
	}
	t, err := s.Repo.GetByUUID(publicID)
	if err != nil {
		return nil, mapNotFound(err, "table")
	}
	return t, nil
}

func (s *TableService) Create(in *TableIn) (*entity.Table, error) {
	taken, err := s.Repo.NumberTaken(in.Number, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict(fmt.Sprintf("table number %d already taken", in.Number))
	}
	t := &entity.Table{Number: in.Number, Description: in.Description}
	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update changes number and description only. The UUID is assigned at
// creation and never rewritten.
func (s *TableService) Update(id uint, in *TableIn) (*entity.Table, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	taken, err := s.Repo.NumberTaken(in.Number, t.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict(fmt.Sprintf("table number %d already taken", in.Number))
	}
	t.Number = in.Number
	t.Description = in.Description
	if err := s.Repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TableService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

// PublicURL is the address encoded into the table's QR code.
func (s *TableService) PublicURL(t *entity.Table) string {
	return fmt.Sprintf("%s/table/%s/", s.SiteBaseURL, t.UUID)
}

// QRCode returns PNG bytes encoding the table's public URL. The image is
// rendered once and cached on the row; repeated reads return the cached
// bytes unchanged until ClearQRCode.
func (s *TableService) QRCode(t *entity.Table) ([]byte, error) {
	if len(t.QRCode) > 0 {
		return t.QRCode, nil
	}
	png, err := qrcode.Encode(s.PublicURL(t), qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.SaveQRCode(t.ID, png); err != nil {
		return nil, err
	}
	t.QRCode = png
	return png, nil
}

func (s *TableService) ClearQRCode(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.ClearQRCode(id)
}
