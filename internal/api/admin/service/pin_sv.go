package adminService

import (
	"errors"
	"time"

	"ThynxSite/internal/api/admin"
	"ThynxSite/internal/entity"
	contextPkg "ThynxSite/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *adminService) PinStatus(ctx context.Context) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.adminRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return false, admin.ErrCheckPinStatus
	}

	_, err = repo.Settings.GetSetting(ctx, entity.SettingAdminPIN)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, admin.ErrSettingNotFound):
		return false, nil
	default:
		s.logFailure(requestID, err, "Failed to check PIN status")
		return false, admin.ErrCheckPinStatus
	}
}

func (s *adminService) PinVersion(ctx context.Context) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.adminRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return "", admin.ErrCheckPinStatus
	}

	setting, err := repo.Settings.GetSetting(ctx, entity.SettingAdminPIN)
	switch {
	case err == nil:
		return setting.ID, nil
	case errors.Is(err, admin.ErrSettingNotFound):
		return "", nil
	default:
		s.logFailure(requestID, err, "Failed to load PIN version")
		return "", admin.ErrCheckPinStatus
	}
}

func (s *adminService) SetPIN(ctx context.Context, pin string) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.adminRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return "", admin.ErrSetPin
	}

	if _, err := repo.Settings.GetSetting(ctx, entity.SettingAdminPIN); err == nil {
		return "", admin.ErrPinAlreadySet
	} else if !errors.Is(err, admin.ErrSettingNotFound) {
		s.logFailure(requestID, err, "Failed to look up PIN")
		return "", admin.ErrSetPin
	}

	setting, err := s.newPinSetting(pin)
	if err != nil {
		s.logFailure(requestID, err, "Failed to prepare PIN")
		return "", admin.ErrSetPin
	}

	created, err := repo.Settings.CreateSettingIfAbsent(ctx, setting)
	if err != nil {
		s.logFailure(requestID, err, "Failed to store PIN")
		return "", admin.ErrSetPin
	}
	if !created {
		return "", admin.ErrPinAlreadySet
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Admin PIN configured")

	return setting.ID, nil
}

func (s *adminService) ReplacePIN(ctx context.Context, pin string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.adminRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return admin.ErrSetPin
	}

	setting, err := s.newPinSetting(pin)
	if err != nil {
		s.logFailure(requestID, err, "Failed to prepare PIN")
		return admin.ErrSetPin
	}

	if err := repo.Settings.UpsertSetting(ctx, setting); err != nil {
		s.logFailure(requestID, err, "Failed to store PIN")
		return admin.ErrSetPin
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Warn("Admin PIN replaced")

	return nil
}

func (s *adminService) VerifyPIN(ctx context.Context, pin string) (bool, string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.adminRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return false, "", admin.ErrVerifyPin
	}

	setting, err := repo.Settings.GetSetting(ctx, entity.SettingAdminPIN)
	if err != nil {
		if errors.Is(err, admin.ErrSettingNotFound) {
			return false, "", admin.ErrPinNotSet
		}
		s.logFailure(requestID, err, "Failed to load PIN")
		return false, "", admin.ErrVerifyPin
	}

	valid, err := s.bcryptUtils.Matches(setting.SettingValue, pin)
	if err != nil {
		s.logFailure(requestID, err, "Failed to compare PIN")
		return false, "", admin.ErrVerifyPin
	}

	if !valid {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Admin PIN mismatch")
		return false, "", nil
	}

	return true, setting.ID, nil
}

func (s *adminService) ResetPIN(ctx context.Context) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.adminRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return admin.ErrResetPin
	}

	if _, err := repo.Settings.DeleteSetting(ctx, entity.SettingAdminPIN); err != nil {
		s.logFailure(requestID, err, "Failed to reset PIN")
		return admin.ErrResetPin
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Warn("Admin PIN reset")

	return nil
}

func (s *adminService) newPinSetting(pin string) (entity.AdminSetting, error) {
	hash, err := s.bcryptUtils.HashPassword(pin)
	if err != nil {
		return entity.AdminSetting{}, err
	}

	id, err := s.utils.NewUUID()
	if err != nil {
		return entity.AdminSetting{}, err
	}

	now := time.Now().UTC()
	return entity.AdminSetting{
		ID:           id,
		SettingKey:   entity.SettingAdminPIN,
		SettingValue: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (s *adminService) logFailure(requestID string, err error, msg string) {
	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"error":      err.Error(),
	}).Error(msg)
}
