package auction

import (
	"domain-auction/internal/auctionerrors"
	"domain-auction/internal/credentials"
	"domain-auction/internal/models"
	"domain-auction/utils"
	"errors"
	"fmt"
)

// Register creates a user account with default permissions and signs it in
func (l *Ledger) Register(name, email, password string) (models.SessionUser, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.repo.FindUserByEmail(email); err == nil {
		l.Notify(models.NotificationError, "Registration Failed", "Email already in use.")
		return models.SessionUser{}, fmt.Errorf("service: failed to register %s: %w", email, auctionerrors.ErrEmailTaken)
	} else if !errors.Is(err, auctionerrors.ErrUserNotFound) {
		return models.SessionUser{}, fmt.Errorf("service: failed to check email %s: %w", email, err)
	}

	hash, err := l.hasher.Hash(password)
	if err != nil {
		l.Notify(models.NotificationError, "Registration Failed", "Your account could not be created.")
		return models.SessionUser{}, fmt.Errorf("service: failed to register %s: %w", email, err)
	}

	now := l.now().UTC()
	stored, err := l.repo.InsertUser(models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		Permissions:  models.DefaultPermissions(),
		IsActive:     true,
		LastLogin:    now,
		CreatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, auctionerrors.ErrEmailTaken) {
			l.Notify(models.NotificationError, "Registration Failed", "Email already in use.")
		}
		return models.SessionUser{}, fmt.Errorf("service: failed to register %s: %w", email, err)
	}

	l.sessionUserID = stored.ID
	l.record("User registered")
	l.Notify(models.NotificationSuccess, "Registration Successful", fmt.Sprintf("Welcome, %s!", stored.Name))
	utils.Info("user registered", map[string]any{"user_id": stored.ID, "email": stored.Email})

	return models.SessionUser{User: stored, Bids: []models.Bid{}}, nil
}

// Login signs in the user whose email and password match
func (l *Ledger) Login(email, password string) (models.SessionUser, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	user, err := l.repo.FindUserByEmail(email)
	if err != nil || !l.hasher.Compare(user.PasswordHash, password) {
		l.Notify(models.NotificationError, "Login Failed", "Invalid email or password.")
		utils.Warn("login failed", map[string]any{"email": email})
		return models.SessionUser{}, fmt.Errorf("service: login %s: %w", email, auctionerrors.ErrInvalidCredentials)
	}

	user.LastLogin = l.now().UTC()
	if err := l.repo.SaveUser(user); err != nil {
		return models.SessionUser{}, fmt.Errorf("service: failed to update last login for user %d: %w", user.ID, err)
	}

	l.sessionUserID = user.ID
	l.record("User logged in")
	l.Notify(models.NotificationSuccess, "Login Successful", fmt.Sprintf("Welcome back, %s!", user.Name))
	utils.Info("user logged in", map[string]any{"user_id": user.ID})

	return models.SessionUser{User: user, Bids: l.repo.GetBidsByUser(user.ID)}, nil
}

// Logout ends the session. It reports whether a session existed.
func (l *Ledger) Logout() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.sessionUserID == 0 {
		return false
	}

	userID := l.sessionUserID
	l.record("User logged out")
	l.Notify(models.NotificationInfo, "Logged Out", "You have been successfully logged out.")
	l.sessionUserID = 0
	utils.Info("user logged out", map[string]any{"user_id": userID})
	return true
}

// CurrentUser returns the signed-in user and their bid history
func (l *Ledger) CurrentUser() (models.SessionUser, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.sessionUserID == 0 {
		return models.SessionUser{}, false
	}
	user, err := l.repo.GetUser(l.sessionUserID)
	if err != nil {
		l.sessionUserID = 0
		return models.SessionUser{}, false
	}
	return models.SessionUser{User: user, Bids: l.repo.GetBidsByUser(user.ID)}, true
}

// IsAuthenticated reports whether a user is signed in
func (l *Ledger) IsAuthenticated() bool {
	_, ok := l.CurrentUser()
	return ok
}

// HasPermission reports whether the signed-in user holds permission
func (l *Ledger) HasPermission(permission string) bool {
	user, ok := l.CurrentUser()
	return ok && user.HasPermission(permission)
}

// IsAdmin reports whether the signed-in user is an administrator
func (l *Ledger) IsAdmin() bool {
	user, ok := l.CurrentUser()
	return ok && user.Role == models.RoleAdmin
}

// IsModerator reports whether the signed-in user is a moderator
func (l *Ledger) IsModerator() bool {
	user, ok := l.CurrentUser()
	return ok && user.Role == models.RoleModerator
}

// Users returns every account ordered by id
func (l *Ledger) Users() []models.User {
	return l.repo.ListUsers()
}

// User returns a single account
func (l *Ledger) User(userID int) (models.User, error) {
	user, err := l.repo.GetUser(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %d: %w", userID, err)
	}
	return user, nil
}

// BidsForUser returns the bid history of an existing account
func (l *Ledger) BidsForUser(userID int) ([]models.Bid, error) {
	if _, err := l.repo.GetUser(userID); err != nil {
		return nil, fmt.Errorf("service: failed to get bids for user %d: %w", userID, err)
	}
	return l.repo.GetBidsByUser(userID), nil
}

// UpdateUser merges patch into an account. Email uniqueness is not re-checked.
func (l *Ledger) UpdateUser(userID int, patch models.UserPatch) (models.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	user, err := l.repo.GetUser(userID)
	if err != nil {
		l.Notify(models.NotificationError, "Update Failed", fmt.Sprintf("User %d was not found.", userID))
		return models.User{}, fmt.Errorf("service: failed to update user %d: %w", userID, err)
	}
	previousName := user.Name

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Permissions != nil {
		user.Permissions = append([]string(nil), (*patch.Permissions)...)
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}
	if patch.Password != nil {
		hash, err := l.hasher.Hash(*patch.Password)
		if err != nil {
			l.Notify(models.NotificationError, "Update Failed", fmt.Sprintf("User %s could not be updated.", previousName))
			return models.User{}, fmt.Errorf("service: failed to update user %d: %w", userID, err)
		}
		user.PasswordHash = hash
	}

	if err := l.repo.SaveUser(user); err != nil {
		l.Notify(models.NotificationError, "Update Failed", fmt.Sprintf("User %s could not be updated.", previousName))
		return models.User{}, fmt.Errorf("service: failed to save user %d: %w", userID, err)
	}

	l.record("Updated user: " + previousName)
	l.Notify(models.NotificationSuccess, "User Updated", fmt.Sprintf("User %s has been updated.", user.Name))
	utils.Info("user updated", map[string]any{"user_id": userID})
	return user, nil
}

// RemoveUser deletes an account, ending the session if it belonged to that account
func (l *Ledger) RemoveUser(userID int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed, err := l.repo.DeleteUser(userID)
	if err != nil {
		l.Notify(models.NotificationError, "Remove Failed", fmt.Sprintf("User %d was not found.", userID))
		return fmt.Errorf("service: failed to remove user %d: %w", userID, err)
	}

	l.record("Removed user: " + removed.Name)
	if l.sessionUserID == userID {
		l.sessionUserID = 0
	}
	l.Notify(models.NotificationInfo, "User Removed", fmt.Sprintf("User %s has been removed from the system.", removed.Name))
	utils.Info("user removed", map[string]any{"user_id": userID})
	return nil
}

// ResetPassword replaces an account's password with a random one and returns it
func (l *Ledger) ResetPassword(userID int) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	user, err := l.repo.GetUser(userID)
	if err != nil {
		l.Notify(models.NotificationError, "Password Reset Failed", fmt.Sprintf("User %d was not found.", userID))
		return "", fmt.Errorf("service: failed to reset password for user %d: %w", userID, err)
	}

	password, err := l.freshPassword(user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("service: failed to reset password for user %d: %w", userID, err)
	}
	hash, err := l.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("service: failed to reset password for user %d: %w", userID, err)
	}

	user.PasswordHash = hash
	if err := l.repo.SaveUser(user); err != nil {
		return "", fmt.Errorf("service: failed to save user %d: %w", userID, err)
	}

	l.record("Reset password for user: " + user.Name)
	l.Notify(models.NotificationSuccess, "Password Reset", fmt.Sprintf("Password for %s has been reset.", user.Name))
	utils.Info("password reset", map[string]any{"user_id": userID, "email": user.Email})
	return password, nil
}

// freshPassword generates a reset password that differs from the one behind oldHash
func (l *Ledger) freshPassword(oldHash string) (string, error) {
	for {
		password, err := credentials.GeneratePassword(credentials.ResetPasswordLength)
		if err != nil {
			return "", err
		}
		if !l.hasher.Compare(oldHash, password) {
			return password, nil
		}
	}
}
