package routers

import (
	"fmt"
	"mentor-service/internal/app/delivery/http/controllers"
	"mentor-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, availabilityController *controllers.AvailabilityController) {
	indexPath := fmt.Sprintf("/{%s}", constvars.URLParamIndex)
	datePath := fmt.Sprintf("/dates/{%s}", constvars.URLParamDate)

	router.Get("/", availabilityController.GetAvailability)
	router.Post("/save", availabilityController.SaveAvailability)
	router.Delete("/draft", availabilityController.DiscardDraft)

	router.Route("/weekly", func(r chi.Router) {
		r.Post("/", availabilityController.AddWeeklySlot)
		r.Patch(indexPath, availabilityController.UpdateWeeklySlot)
		r.Delete(indexPath, availabilityController.RemoveWeeklySlot)
	})

	router.Route(datePath, func(r chi.Router) {
		r.Get("/", availabilityController.GetDateAvailability)
		r.Delete("/", availabilityController.ClearDateOverride)
		r.Put("/unavailable", availabilityController.SetDateUnavailable)
		r.Post("/slots", availabilityController.AddDateOverrideSlot)
		r.Patch("/slots"+indexPath, availabilityController.UpdateDateOverrideSlot)
		r.Delete("/slots"+indexPath, availabilityController.RemoveDateOverrideSlot)
	})
}
