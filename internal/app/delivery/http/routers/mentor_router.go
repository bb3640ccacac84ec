package routers

import (
	"fmt"
	"mentor-service/internal/app/delivery/http/controllers"
	"mentor-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMentorRoutes(router chi.Router, mentorController *controllers.MentorController) {
	router.Get("/profile", mentorController.GetProfile)
	router.Patch("/profile", mentorController.UpdateProfile)
	router.Post(fmt.Sprintf("/profile/images/{%s}", constvars.URLParamImageKind), mentorController.UploadProfileImage)

	router.Get("/company", mentorController.GetCompanyProfile)
	router.Put("/company", mentorController.SaveCompanyProfile)
}
