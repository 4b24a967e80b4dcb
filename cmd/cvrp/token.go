package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"fleetplan/config"
	"fleetplan/internal/infra/auth"
)

func runToken(secret, issuer, subject, scopes string, ttl time.Duration, w io.Writer) error {
	cfg := &config.Config{Auth: &config.AuthConfig{Issuer: issuer}}
	cfg.SecretKey.Access = secret

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	var scopeList []string
	for _, s := range strings.Split(scopes, ",") {
		if s = strings.TrimSpace(s); s != "" {
			scopeList = append(scopeList, s)
		}
	}

	token, err := tokenSvc.IssueToken(subject, scopeList, ttl)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, token)

	return nil
}
