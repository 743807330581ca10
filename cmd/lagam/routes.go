package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getcatalog "lagam-golang/http-server/catalog/get"
	savecatalog "lagam-golang/http-server/catalog/save"
	upcatalog "lagam-golang/http-server/catalog/update"
	getcontrol "lagam-golang/http-server/control-tower/get"
	generate_excel "lagam-golang/http-server/generate-report/generate-excel"
	dellagams "lagam-golang/http-server/lagams/delete"
	getlagams "lagam-golang/http-server/lagams/get"
	savelagams "lagam-golang/http-server/lagams/save"
	uplagams "lagam-golang/http-server/lagams/update"
	getreport "lagam-golang/http-server/report/get"
	deltasks "lagam-golang/http-server/tasks/delete"
	gettasks "lagam-golang/http-server/tasks/get"
	savetasks "lagam-golang/http-server/tasks/save"
	uptasks "lagam-golang/http-server/tasks/update"
	delteams "lagam-golang/http-server/teams/delete"
	getteams "lagam-golang/http-server/teams/get"
	saveteams "lagam-golang/http-server/teams/save"
	upteams "lagam-golang/http-server/teams/update"
	delusers "lagam-golang/http-server/users/delete"
	getusers "lagam-golang/http-server/users/get"
	saveusers "lagam-golang/http-server/users/save"
	upusers "lagam-golang/http-server/users/update"
	"lagam-golang/internal/config"
	"lagam-golang/internal/middleware/auth"
	generate_excel2 "lagam-golang/internal/service/generate-excel"
	"lagam-golang/internal/service/report"
	"lagam-golang/internal/storage/jsonfile"
)

func routes(cfg config.Config, log *slog.Logger, storage *jsonfile.Storage, reportService *report.Service, genService *generate_excel2.GenerateExcelService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// auth
	router.Post("/api/signup", saveusers.SignupUser(log, storage))
	router.Post("/api/login", saveusers.LoginUser(log, storage))

	// users
	router.Get("/api/users", getusers.GetUsers(log, storage))
	router.Get("/api/users/{id}", getusers.GetUser(log, storage))
	router.Put("/api/users/{id}", upusers.UpdateUserProfile(log, storage))
	router.Put("/api/users/{id}/password", upusers.UpdateUserPassword(log, storage))
	router.Delete("/api/users/{id}", delusers.DeleteUser(log, storage))

	// teams
	router.Get("/api/teams", getteams.GetTeams(log, storage))
	router.Get("/api/teams/{id}", getteams.GetTeam(log, storage))
	router.Post("/api/teams", saveteams.SaveTeam(log, storage))
	router.Put("/api/teams/{id}", upteams.UpdateTeam(log, storage))
	router.Delete("/api/teams/{id}", delteams.DeleteTeam(log, storage))

	// operation catalog
	router.Get("/api/catalog", getcatalog.GetCatalogSections(log, storage))
	router.Get("/api/catalog/section", getcatalog.GetCatalogSection(log, storage))

	// lagams: list with display status, detail with derived status and
	// per-section reconciliation
	router.Get("/api/lagams", getlagams.GetLagams(log, storage))
	router.Get("/api/lagams/{lagamId}", getlagams.GetLagam(log, storage))
	router.Get("/api/lagams/{lagamId}/section-status", getlagams.GetSectionStatus(log, storage))
	router.Get("/api/lagams/{lagamId}/available-quantity", getlagams.GetAvailableQuantity(log, storage))
	router.Post("/api/lagams", savelagams.SaveLagam(log, storage))
	router.Put("/api/lagams/{lagamId}", uplagams.UpdateLagam(log, storage))
	router.Delete("/api/lagams/{lagamId}", dellagams.DeleteLagam(log, storage))

	// production tasks
	router.Get("/api/tasks", gettasks.GetTasks(log, storage))
	router.Get("/api/tasks/{id}", gettasks.GetTask(log, storage))
	router.Post("/api/tasks", savetasks.SaveTask(log, storage))
	router.Put("/api/tasks/{id}", uptasks.UpdateTask(log, storage))
	router.Put("/api/tasks/{id}/checklist", uptasks.UpdateTaskChecklist(log, storage))
	router.Delete("/api/tasks/{id}", deltasks.DeleteTask(log, storage))

	// reporting: analysis and report are thin callers of the same
	// aggregation
	router.Get("/api/report/performance", getreport.GetPerformanceReport(log, reportService))
	router.Get("/api/report/analysis", getreport.GetPerformanceAnalysis(log, reportService))
	router.Get("/api/control-tower", getcontrol.GetControlTower(log, storage))
	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, genService))

	// admin panel
	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Post("/catalog", savecatalog.SaveCatalogSectionAdmin(log, storage))
	adminRouter.Put("/catalog/{seccion}", upcatalog.UpdateCatalogSectionAdmin(log, storage))
	adminRouter.Delete("/catalog/{seccion}", upcatalog.DeleteCatalogSectionAdmin(log, storage))
	adminRouter.Post("/users", saveusers.SaveUserAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	// static SPA
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("frontend dir not found, serving API only", "path", frontendDir)
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	// SPA fallback: any other path serves index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
