package app

import (
	"context"
	"fmt"

	"github.com/bluemoon/stockkeeper/internal/models"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := models.ValidateCredentials(email, password); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	candidate := models.User{Email: models.NormalizeEmail(email), Password: password}

	if err := a.manager.Login(ctx, candidate); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", candidate.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.manager.Logout(ctx); err != nil {
		a.log.Warn(ctx, "session record may not have been removed", "error", err)
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	user := a.manager.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	fmt.Fprintln(a.out, user.Email)
	return nil
}
