// Package gql exposes the GraphQL schema. Resolvers are one-line
// delegations to the datasources; all guard checks, batching and mapping
// live there.
package gql

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teamreg/backend/internal/auth"
	"github.com/teamreg/backend/internal/event"
	"github.com/teamreg/backend/internal/invoice"
	"github.com/teamreg/backend/internal/note"
	"github.com/teamreg/backend/internal/program"
	"github.com/teamreg/backend/internal/registration"
	"github.com/teamreg/backend/internal/settings"
	"github.com/teamreg/backend/internal/tag"
	"github.com/teamreg/backend/internal/team"
	"github.com/teamreg/backend/internal/user"
)

type ctxKey int

const (
	dsKey ctxKey = iota
	userKey
	timeZoneKey
)

// DataSources bundles one datasource per aggregate. A fresh bundle is
// built for every request so each loader cache spans exactly one request.
type DataSources struct {
	Users         *user.DataSource
	Tags          *tag.DataSource
	Teams         *team.DataSource
	Programs      *program.DataSource
	Events        *event.DataSource
	Invoices      *invoice.DataSource
	Registrations *registration.DataSource
	Notes         *note.DataSource
	Settings      *settings.DataSource
}

func NewDataSources(db *gorm.DB, cu *auth.CurrentUser, log *zap.Logger) *DataSources {
	teamRepo := team.NewRepository(db)
	eventRepo := event.NewRepository(db)
	return &DataSources{
		Users:         user.NewDataSource(user.NewRepository(db), cu, log),
		Tags:          tag.NewDataSource(tag.NewRepository(db), cu, log),
		Teams:         team.NewDataSource(teamRepo, cu, log),
		Programs:      program.NewDataSource(program.NewRepository(db), cu, log),
		Events:        event.NewDataSource(eventRepo, cu, log),
		Invoices:      invoice.NewDataSource(invoice.NewRepository(db), cu, log),
		Registrations: registration.NewDataSource(registration.NewRepository(db), teamRepo, eventRepo, cu, log),
		Notes:         note.NewDataSource(note.NewRepository(db), cu, log),
		Settings:      settings.NewDataSource(settings.NewRepository(db), cu, log),
	}
}

// WithRequest stores the per-request bag on the context handed to the
// GraphQL executor.
func WithRequest(ctx context.Context, ds *DataSources, cu *auth.CurrentUser, timeZone string) context.Context {
	ctx = context.WithValue(ctx, dsKey, ds)
	ctx = context.WithValue(ctx, userKey, cu)
	ctx = context.WithValue(ctx, timeZoneKey, timeZone)
	return ctx
}

func dsFrom(ctx context.Context) *DataSources {
	return ctx.Value(dsKey).(*DataSources)
}

func userFrom(ctx context.Context) *auth.CurrentUser {
	cu, _ := ctx.Value(userKey).(*auth.CurrentUser)
	return cu
}

// TimeZoneFrom returns the request's effective time zone name.
func TimeZoneFrom(ctx context.Context) string {
	tz, _ := ctx.Value(timeZoneKey).(string)
	return tz
}
