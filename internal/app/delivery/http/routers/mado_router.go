package routers

import (
	"mado-service/internal/app/delivery/http/controllers"
	"mado-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMadoRoutes(router chi.Router, madoController *controllers.MadoController) {
	router.Post(constvars.MadoGeneratePath, madoController.GenerateMado)
	router.Post(constvars.MadoSendPath, madoController.SendMado)
	router.Get(constvars.MadoObjectsPath+"/*", madoController.GetDraftObject)
}
