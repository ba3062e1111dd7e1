package api

import (
	"time"

	"github.com/baajarmeh/wooridb/internal/engine"
	"github.com/baajarmeh/wooridb/internal/wql"
)

// flatten renders a record as one flat JSON object: payload fields sit
// next to the service fields. A payload field may not overwrite a
// service field; it moves under a "data." prefix instead.
func flatten(entity string, rec *engine.Record) map[string]any {
	out := map[string]any{
		"entity":     entity,
		"id":         rec.ID,
		"created_at": rec.CreatedAt.Format(time.RFC3339),
	}
	for k, v := range rec.Payload {
		if _, clash := out[k]; clash {
			out["data."+k] = wql.Native(v)
			continue
		}
		out[k] = wql.Native(v)
	}
	return out
}
