package routers

import (
	"mado-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDraftsRoutes(router chi.Router, draftsController *controllers.DraftsController) {
	router.Get("/", draftsController.ShowPage)
	router.Get("/drafts.json", draftsController.ListDrafts)
	router.Post("/drafts", draftsController.GenerateDraft)
	router.Get("/drafts/preview/close", draftsController.ClosePreview)
	router.Get("/drafts/{draftID}/preview", draftsController.OpenPreview)
	router.Post("/drafts/{draftID}/send", draftsController.SendDraft)
}
