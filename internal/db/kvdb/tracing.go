// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package kvdb

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("github.com/harshdhankhar10/Event-finder/internal/db/kvdb")
