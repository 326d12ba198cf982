// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/woozymasta/geoschema/geojson"
	"github.com/woozymasta/geoschema/internal/output"
)

// ErrorResponse is the body written for rejected requests. Kind and Path
// are set for validation failures only.
type ErrorResponse struct {
	Kind    string `json:"kind,omitempty"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

type validateParams struct {
	many   bool
	minify bool
	format string
}

// HandleTypes serves the object types accepted by the validator.
func (s *ServerContext) HandleTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeError(w, http.StatusMethodNotAllowed, ErrorResponse{Message: "method not allowed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(s.Types)
}

// HandleValidate validates the GeoJSON request body and responds with its
// normalized form.
func (s *ServerContext) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		writeError(w, http.StatusMethodNotAllowed, ErrorResponse{Message: "method not allowed"})
		return
	}

	schema, params, err := s.schemaFor(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.Config.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, ErrorResponse{
				Message: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			})
			return
		}
		writeError(w, http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	data, err := geojson.ParseJSON(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Message: "invalid JSON: " + err.Error()})
		return
	}

	objs, err := schema.Decode(data)
	if err != nil {
		var verr *geojson.ValidationError
		if errors.As(err, &verr) {
			log.Debug().
				Str("kind", verr.Kind.String()).
				Str("path", verr.Path).
				Msg(verr.Message)
			writeError(w, http.StatusUnprocessableEntity, ErrorResponse{
				Kind:    verr.Kind.String(),
				Path:    verr.Path,
				Message: verr.Message,
			})
			return
		}
		writeError(w, http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	var result any
	if params.many {
		result, err = schema.Encode(objs)
	} else {
		result, err = schema.Encode(objs[0])
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to dump validated objects")
		writeError(w, http.StatusInternalServerError, ErrorResponse{Message: "failed to encode result"})
		return
	}

	out, err := output.Render(result, params.format, params.minify)
	if err != nil {
		log.Error().Err(err).Msg("Failed to render result")
		writeError(w, http.StatusInternalServerError, ErrorResponse{Message: "failed to encode result"})
		return
	}

	w.Header().Set("Content-Type", output.ContentType(params.format))
	_, _ = w.Write(out)
}

// schemaFor builds the request schema from the server configuration and
// the query overrides many, geometries, unknown, format and minify.
func (s *ServerContext) schemaFor(q url.Values) (*geojson.Schema, validateParams, error) {
	params := validateParams{format: output.JSON}
	cfg := *s.Config

	var err error
	if params.many, err = boolParam(q, "many", false); err != nil {
		return nil, params, err
	}
	if params.minify, err = boolParam(q, "minify", false); err != nil {
		return nil, params, err
	}
	if cfg.GeometriesOnly, err = boolParam(q, "geometries", cfg.GeometriesOnly); err != nil {
		return nil, params, err
	}

	if v := q.Get("unknown"); v != "" {
		policy, err := geojson.ParseUnknownPolicy(v)
		if err != nil {
			return nil, params, err
		}
		cfg.Unknown = string(policy)
	}

	switch v := q.Get("format"); v {
	case "", output.JSON:
	case output.YAML:
		params.format = output.YAML
	default:
		return nil, params, fmt.Errorf("unsupported format %q, expected json or yaml", v)
	}

	return cfg.Schema(geojson.WithMany(params.many)), params, nil
}

func boolParam(q url.Values, name string, def bool) (bool, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s parameter %q", name, v)
	}
	return b, nil
}

func writeError(w http.ResponseWriter, status int, body ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
