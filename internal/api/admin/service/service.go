package adminService

import (
	adminRepository "ThynxSite/internal/api/admin/repository"
	"ThynxSite/pkg/bcrypt"
	"ThynxSite/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAdminService interface {
	// PinStatus reports whether an admin PIN is configured.
	PinStatus(ctx context.Context) (bool, error)
	// PinVersion identifies the configured PIN. It changes whenever the PIN
	// is set, replaced or reset, and is "" when no PIN exists.
	PinVersion(ctx context.Context) (string, error)
	// SetPIN stores the first PIN and returns its version. It fails with
	// ErrPinAlreadySet once a PIN exists, even when two callers race.
	SetPIN(ctx context.Context, pin string) (string, error)
	// ReplacePIN overwrites the stored PIN unconditionally. Operator use only.
	ReplacePIN(ctx context.Context, pin string) error
	// VerifyPIN reports whether pin matches and, if so, the version it
	// matched against.
	VerifyPIN(ctx context.Context, pin string) (bool, string, error)
	ResetPIN(ctx context.Context) error
}

type adminService struct {
	log         *logrus.Logger
	adminRepo   adminRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

func NewAdminService(
	log *logrus.Logger,
	adminRepo adminRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAdminService {
	return &adminService{
		log:         log,
		adminRepo:   adminRepo,
		bcryptUtils: bcryptUtils,
		utils:       utils,
	}
}
