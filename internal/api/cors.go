package api

import (
	"github.com/gorilla/handlers"
)

func setupCorsOptions(origin string) []handlers.CORSOption {
	methods := handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"})
	origins := handlers.AllowedOrigins([]string{origin})
	headers := handlers.AllowedHeaders([]string{"Content-Type"})

	options := []handlers.CORSOption{methods, origins, headers}
	if origin != "*" {
		options = append(options, handlers.AllowCredentials())
	}

	return options
}
