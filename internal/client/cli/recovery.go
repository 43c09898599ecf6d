package cli

import (
	"context"
	"errors"
	"os"

	"github.com/avasiljevs/accountkeeper/internal/common"
)

// Verify prompts for the token from the verification email and confirms the
// signed-in user's address.
func (a *App) Verify(ctx context.Context) error {
	verificationToken, err := getSimpleText(a.reader, "Enter the verification token from the email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.VerifyEmail(ctx, verificationToken); err != nil {
		a.reportAuthError(ctx, err)
		return err
	}

	printlnFn("Email verified!")
	return nil
}

// Resend requests a new verification email for the given address.
func (a *App) Resend(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.ResendVerification(ctx, email); err != nil {
		a.reportAuthError(ctx, err)
		return err
	}

	printlnFn("Verification email sent.")
	return nil
}

// Reset requests a password reset email.
func (a *App) Reset(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.RequestPasswordReset(ctx, email); err != nil {
		a.reportAuthError(ctx, err)
		return err
	}

	printlnFn("If the address is registered, a reset email is on its way.")
	return nil
}

// ConfirmReset finishes a password reset using the token from the email.
// The new password is entered twice; both inputs are wiped before returning.
func (a *App) ConfirmReset(ctx context.Context) error {
	resetToken, err := getSimpleText(a.reader, "Enter the reset token from the email", os.Stdout)
	if err != nil {
		return err
	}
	userID, err := getSimpleText(a.reader, "Enter your user id", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Repeat new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	err = a.auth.ConfirmPasswordReset(ctx, resetToken, string(password), string(confirm), userID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrMissingField):
			printlnFn("A reset token is required.")
		case errors.Is(err, common.ErrPasswordPolicy):
			printlnFn("Password must be at least 8 characters with an uppercase letter, a digit and a symbol")
		case errors.Is(err, common.ErrPasswordMismatch):
			printlnFn("Passwords do not match.")
		default:
			a.reportAuthError(ctx, err)
		}
		return err
	}

	printlnFn("Password changed. Log in with the new password.")
	return nil
}

// Refresh exchanges the current token for a fresh one.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.auth.RefreshToken(ctx); err != nil {
		switch {
		case errors.Is(err, common.ErrNoToken):
			printlnFn("Not logged in.")
		case errors.Is(err, common.ErrTokenExpired):
			printlnFn("Session expired, log in again.")
		default:
			a.reportAuthError(ctx, err)
		}
		return err
	}
	printlnFn("Token refreshed.")
	return nil
}
