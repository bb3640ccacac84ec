package routers

import (
	"mentor-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachTimeRoutes(router chi.Router, timeController *controllers.TimeController) {
	router.Post("/encode", timeController.Encode)
	router.Get("/decode", timeController.Decode)
}
