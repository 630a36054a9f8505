package routes

import (
	"net/http"

	_ "github.com/oggyb/sms-dispatch/internal/docs" // swagger docs
	"github.com/oggyb/sms-dispatch/internal/response"
	swaggerHandler "github.com/swaggo/http-swagger"
)

type AppDeps struct {
	Home  HomeHandler
	SMS   SMSHandler
	Group GroupHandler
}

type HomeHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type SMSHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	ResetStats(w http.ResponseWriter, r *http.Request)
}

type GroupHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

func Register(mux *http.ServeMux, d AppDeps) {
	mux.HandleFunc("GET /{$}", d.Home.Index)
	mux.HandleFunc("GET /health", d.Home.Health)

	mux.HandleFunc("POST /sms", d.SMS.Send)
	mux.HandleFunc("GET /sms/stats", d.SMS.Stats)
	mux.HandleFunc("DELETE /sms/stats", d.SMS.ResetStats)

	mux.HandleFunc("POST /groups", d.Group.Create)
	mux.HandleFunc("GET /groups", d.Group.List)
	mux.HandleFunc("GET /groups/{name}", d.Group.Get)
	mux.HandleFunc("DELETE /groups/{name}", d.Group.Delete)

	//Swagger
	mux.HandleFunc("GET /swagger/", swaggerHandler.WrapHandler)

	// Fallback handler for undefined routes (404)
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, "route not found")
	}))
}
