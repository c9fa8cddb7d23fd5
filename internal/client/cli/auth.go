package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/gatekeeper/internal/client/client"
	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email, a display name and a password and
// attempts to create a new account via the AuthService.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning. Any I/O or service error is returned
// unchanged.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, email, name, password); err != nil {
		if errors.Is(err, client.ErrRegistrationRejected) {
			log.Printf("Registration unsuccessfull: email already taken")
		} else {
			log.Printf("Registration unsuccessfull: %s", err.Error())
		}
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
//
// On success it remembers the account email, switches the app to ModeOnline
// and returns nil; the session is cached by the AuthService so the next run
// can restore it. The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, password); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			log.Printf("Server unavailable")
			a.setMode(ModeOffline)
		} else {
			log.Printf("Login unsuccessfull: %s", err.Error())
		}
		return err
	}

	log.Printf("Login successfull")
	a.email = email
	a.setMode(ModeOnline)
	return nil
}

// Whoami fetches the account behind the current session from the server
// and prints it. An expired or missing session surfaces as "Not logged in".
func (a *App) Whoami(ctx context.Context) error {
	account, err := a.authService.Whoami(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			log.Printf("Not logged in")
		} else {
			log.Printf("Whoami unsuccessfull: %s", err.Error())
		}
		return err
	}

	fmt.Printf("Logged in as %s (%s), account id %s\n", account.Email, account.Name, account.ID)
	return nil
}

// Ping probes the server and updates the connectivity Mode accordingly.
func (a *App) Ping(ctx context.Context) error {
	if err := a.authService.Ping(ctx); err != nil {
		log.Printf("Server unavailable: %s", err.Error())
		a.setMode(ModeOffline)
		return err
	}

	fmt.Println("Server is up")
	a.setMode(ModeOnline)
	return nil
}

// Logout wipes the locally cached session and forgets the account email.
// It returns any error from the AuthService cleanup.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.email = ""
	return nil
}
