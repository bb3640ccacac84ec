package routers

import (
	"fmt"
	"mentor-service/internal/app/config"
	"mentor-service/internal/app/delivery/http/controllers"
	"mentor-service/internal/app/delivery/http/middlewares"
	"mentor-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	availabilityController *controllers.AvailabilityController,
	timeController *controllers.TimeController,
	mentorController *controllers.MentorController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodPost,
			constvars.MethodPut,
			constvars.MethodPatch,
			constvars.MethodDelete,
			constvars.MethodOptions,
		},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.BodyLimit)

	router.NotFound(middlewares.NotFound)
	router.MethodNotAllowed(middlewares.MethodNotAllowed)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)
	mentorPrefix := fmt.Sprintf("/%s/{%s}", constvars.ResourceMentors, constvars.URLParamMentorID)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/"+constvars.ResourceTime, func(r chi.Router) {
				attachTimeRoutes(r, timeController)
			})

			r.Route(mentorPrefix, func(r chi.Router) {
				r.Route("/"+constvars.ResourceAvailability, func(r chi.Router) {
					attachAvailabilityRoutes(r, availabilityController)
				})
				attachMentorRoutes(r, mentorController)
			})
		})
	})
}
