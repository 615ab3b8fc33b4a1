package main

import (
	"errors"
	"net/http"

	"github.com/AdamBeresnev/federation-brackets/internal/bracket"
	"github.com/AdamBeresnev/federation-brackets/internal/classify"
	"github.com/AdamBeresnev/federation-brackets/internal/draft"
	"github.com/AdamBeresnev/federation-brackets/internal/federation"
	"github.com/AdamBeresnev/federation-brackets/internal/httputil"
	"github.com/AdamBeresnev/federation-brackets/internal/service"
	"github.com/AdamBeresnev/federation-brackets/views"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type categoriesResponse struct {
	Championship      *federation.Championship  `json:"championship"`
	Buckets           []*classify.Bucket        `json:"buckets"`
	Unclassified      []federation.Registration `json:"unclassified"`
	UnclassifiedCount int                       `json:"unclassified_count"`
	Warnings          []string                  `json:"warnings,omitempty"`
}

type bracketResponse struct {
	Key     string         `json:"key"`
	Code    string         `json:"code"`
	Name    string         `json:"name"`
	Draft   bool           `json:"draft"`
	SavedID *uuid.UUID     `json:"db_id"`
	Bracket bracket.Rounds `json:"bracket"`
}

type winnerRequest struct {
	MatchID  uuid.UUID `json:"match_id"`
	WinnerID uuid.UUID `json:"winner_id"`
}

func newRouter(app *application) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(app.sessions.LoadAndSave)

	r.Route("/championships/{id}", func(r chi.Router) {
		r.Use(requireUUIDParam("id", "Invalid championship ID"))

		r.Get("/categories", func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")

			categories, err := app.categories.GetCategories(r.Context(), id)
			if err != nil {
				serviceError(w, "Failed to get categories", err)
				return
			}

			buckets := categories.Buckets
			if buckets == nil {
				buckets = []*classify.Bucket{}
			}
			httputil.JSON(w, http.StatusOK, categoriesResponse{
				Championship:      categories.Championship,
				Buckets:           buckets,
				Unclassified:      categories.Unclassified,
				UnclassifiedCount: len(categories.Unclassified),
				Warnings:          categories.Warnings,
			})
		})

		r.Post("/registrations", func(w http.ResponseWriter, r *http.Request) {
			var in service.RegistrationInput
			if err := httputil.ReadJSON(w, r, &in); err != nil {
				httputil.BadRequest(w, "Invalid registration payload", err)
				return
			}

			reg, err := app.registrations.Register(r.Context(), chi.URLParam(r, "id"), in)
			if err != nil {
				serviceError(w, "Failed to register athlete", err)
				return
			}
			httputil.JSON(w, http.StatusCreated, reg)
		})

		r.Route("/categories/{key}/bracket", func(r chi.Router) {
			r.Post("/", func(w http.ResponseWriter, r *http.Request) {
				id, key := chi.URLParam(r, "id"), chi.URLParam(r, "key")

				b, rounds, err := app.brackets.Generate(r.Context(), id, key)
				if err != nil {
					serviceError(w, "Failed to generate bracket", err)
					return
				}
				if err := app.drafts.Put(r.Context(), id, key, rounds); err != nil {
					httputil.InternalServerError(w, "Failed to keep generated bracket", err)
					return
				}

				httputil.JSON(w, http.StatusOK, bracketResponse{
					Key:     b.Key,
					Code:    b.Code,
					Name:    b.Name,
					Draft:   true,
					SavedID: b.BracketID,
					Bracket: rounds,
				})
			})

			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				id, key := chi.URLParam(r, "id"), chi.URLParam(r, "key")

				b, err := app.categories.GetBucket(r.Context(), id, key)
				if err != nil {
					serviceError(w, "Failed to get category", err)
					return
				}

				rounds, isDraft := b.Bracket, false
				switch pending, err := app.drafts.Get(r.Context(), id, key); {
				case err == nil:
					rounds, isDraft = pending, true
				case !errors.Is(err, draft.ErrNoDraft):
					app.logger.Warn("dropping unreadable draft", zap.String("category", key), zap.Error(err))
					app.drafts.Discard(r.Context(), id, key)
				}

				if len(rounds) == 0 {
					httputil.NotFound(w, service.ErrNoBracket.Error(), nil)
					return
				}

				data := views.PrepareBracketData(b.Name, b.Code, rounds, isDraft)
				if err := views.Render(w, r, views.BracketView(data)); err != nil {
					app.logger.Error("failed to render bracket", zap.String("category", key), zap.Error(err))
				}
			})

			r.Put("/", func(w http.ResponseWriter, r *http.Request) {
				id, key := chi.URLParam(r, "id"), chi.URLParam(r, "key")

				rounds, err := app.drafts.Get(r.Context(), id, key)
				if err != nil {
					if errors.Is(err, draft.ErrNoDraft) {
						httputil.Conflict(w, "Generate a bracket before saving", err)
						return
					}
					httputil.InternalServerError(w, "Failed to read generated bracket", err)
					return
				}

				saved, err := app.brackets.SaveBracket(r.Context(), id, key, rounds)
				if err != nil {
					serviceError(w, "Failed to save bracket", err)
					return
				}
				app.drafts.Discard(r.Context(), id, key)

				httputil.JSON(w, http.StatusOK, bracketResponse{
					Key:     saved.Key,
					Code:    saved.Code,
					Name:    saved.Name,
					SavedID: saved.BracketID,
					Bracket: saved.Bracket,
				})
			})

			r.Post("/winner", func(w http.ResponseWriter, r *http.Request) {
				id, key := chi.URLParam(r, "id"), chi.URLParam(r, "key")

				var req winnerRequest
				if err := httputil.ReadJSON(w, r, &req); err != nil {
					httputil.BadRequest(w, "Invalid winner payload", err)
					return
				}

				saved, err := app.brackets.AdvanceWinner(r.Context(), id, key, req.MatchID, req.WinnerID)
				if err != nil {
					serviceError(w, "Failed to record winner", err)
					return
				}

				httputil.JSON(w, http.StatusOK, bracketResponse{
					Key:     saved.Key,
					Code:    saved.Code,
					Name:    saved.Name,
					SavedID: saved.BracketID,
					Bracket: saved.Bracket,
				})
			})
		})
	})

	r.Get("/classifications", func(w http.ResponseWriter, r *http.Request) {
		classifications, err := app.classifications.GetClassifications(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to get classifications", err)
			return
		}
		if classifications == nil {
			classifications = []federation.Classification{}
		}
		httputil.JSON(w, http.StatusOK, classifications)
	})

	r.Post("/classifications", func(w http.ResponseWriter, r *http.Request) {
		var in classify.ClassificationInput
		if err := httputil.ReadJSON(w, r, &in); err != nil {
			httputil.BadRequest(w, "Invalid classification payload", err)
			return
		}

		c, err := app.classifications.CreateClassification(r.Context(), in)
		if err != nil {
			serviceError(w, "Failed to create classification", err)
			return
		}
		httputil.JSON(w, http.StatusCreated, c)
	})

	r.Get("/weight-categories", func(w http.ResponseWriter, r *http.Request) {
		categories, err := app.classifications.GetWeightCategories(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to get weight categories", err)
			return
		}
		if categories == nil {
			categories = []federation.WeightCategory{}
		}
		httputil.JSON(w, http.StatusOK, categories)
	})

	return r
}

func requireUUIDParam(name, msg string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := uuid.Parse(chi.URLParam(r, name)); err != nil {
				httputil.BadRequest(w, msg, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// serviceError maps errors from the service layer to responses.
func serviceError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrChampionshipNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrNoBracket),
		errors.Is(err, bracket.ErrMatchNotFound):
		httputil.NotFound(w, err.Error(), err)
	case errors.Is(err, service.ErrInvalidRegistration),
		errors.Is(err, classify.ErrInvalidClassification),
		errors.Is(err, bracket.ErrNotEnoughAthletes),
		errors.Is(err, bracket.ErrWinnerNotInMatch),
		errors.Is(err, bracket.ErrMatchNotReady):
		httputil.BadRequest(w, err.Error(), err)
	case errors.Is(err, classify.ErrDuplicateClassification),
		errors.Is(err, bracket.ErrMatchDecided):
		httputil.Conflict(w, err.Error(), err)
	default:
		httputil.InternalServerError(w, msg, err)
	}
}
