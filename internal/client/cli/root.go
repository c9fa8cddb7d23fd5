package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/gatekeeper/internal/client/client"
)

func (a *App) getStatus() string {
	s := ""
	if a.email != "" {
		s = a.email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to GateKeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	email, err := a.authService.RestoreSession(ctx)
	if err == nil {
		a.email = email
		log.Printf("Restored session for %s", email)
	} else if !errors.Is(err, client.ErrLocalDataNotAvailable) {
		log.Printf("Session restore unsuccessfull: %s", err.Error())
	}

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	runREPL(ctx, a, a.getStatus, scanner)
}
