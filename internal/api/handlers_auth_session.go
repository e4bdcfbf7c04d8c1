package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/rowanleith/whelpline/internal/models"
	"github.com/rowanleith/whelpline/internal/security"
	"github.com/rowanleith/whelpline/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if validationError := validateRegistrationCredentials(credentials); validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	handler.ensureDependencies()
	exists, err := handler.repositories.Users.ExistsByNormalizedEmail(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	recoveryCode, err := security.GenerateRecoveryCode()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recovery code")
	}
	recoveryHash, err := bcrypt.GenerateFromPassword([]byte(recoveryCode), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recovery code")
	}

	user := models.User{
		Email:            credentials.Email,
		PasswordHash:     string(passwordHash),
		RecoveryCodeHash: string(recoveryHash),
		Role:             models.RoleOwner,
		KennelName:       credentials.KennelName,
		SubscriptionTier: models.SubscriptionTierTrial,
		CreatedAt:        time.Now().In(handler.location),
	}
	if err := handler.repositories.Users.Create(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":            true,
		"recovery_code": recoveryCode,
		"trial_days":    models.TrialPeriodDays,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	user, err := handler.repositories.Users.FindByNormalizedEmail(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user, credentials.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{"ok": true})
}

// RecoverAccount resets a forgotten password against the one-time recovery
// code issued at registration. A successful recovery rotates the code (the
// old one is spent) and signs the account in.
func (handler *Handler) RecoverAccount(c *fiber.Ctx) error {
	input := recoverAccountInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	code := security.NormalizeRecoveryCode(input.RecoveryCode)
	if !security.ValidRecoveryCodeFormat(code) {
		return apiError(c, fiber.StatusBadRequest, "invalid recovery code")
	}
	newPassword := strings.TrimSpace(input.NewPassword)
	if len(newPassword) < minPasswordLength {
		return apiError(c, fiber.StatusBadRequest, "password too short")
	}

	handler.ensureDependencies()
	users, err := handler.repositories.Users.ListWithRecoveryCodeHash()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to recover account")
	}

	var user *models.User
	for index := range users {
		if bcrypt.CompareHashAndPassword([]byte(users[index].RecoveryCodeHash), []byte(code)) == nil {
			user = &users[index]
			break
		}
	}
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "recovery code not recognized")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}
	nextCode, err := security.GenerateRecoveryCode()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to rotate recovery code")
	}
	nextHash, err := bcrypt.GenerateFromPassword([]byte(nextCode), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to rotate recovery code")
	}

	user.PasswordHash = string(passwordHash)
	user.RecoveryCodeHash = string(nextHash)
	if err := handler.repositories.Users.Save(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to recover account")
	}

	if err := handler.setAuthCookie(c, user, false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{"ok": true, "recovery_code": nextCode})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) CurrentAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	now := time.Now().In(handler.location)
	return c.JSON(fiber.Map{
		"email":               user.Email,
		"role":                user.Role,
		"kennel_name":         user.KennelName,
		"subscription_tier":   user.SubscriptionTier,
		"subscription_active": services.SubscriptionActive(*user, now),
		"trial_days_left":     services.TrialDaysLeft(*user, now, handler.location),
	})
}
