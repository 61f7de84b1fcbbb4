package gql

import (
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teamreg/backend/internal/middleware"
)

// Handler serves /graphql. Datasources are constructed per request so the
// loader caches live exactly as long as the request does.
func Handler(schema *graphql.Schema, db *gorm.DB, graphiql bool, log *zap.Logger) gin.HandlerFunc {
	h := handler.New(&handler.Config{
		Schema:   schema,
		Pretty:   graphiql,
		GraphiQL: graphiql,
	})
	return func(c *gin.Context) {
		cu := middleware.GetCurrentUser(c)
		ds := NewDataSources(db, cu, log)
		ctx := WithRequest(c.Request.Context(), ds, cu, middleware.GetTimeZone(c))
		h.ContextHandler(ctx, c.Writer, c.Request)
	}
}
