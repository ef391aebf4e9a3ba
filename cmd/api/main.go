package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/interntrack/interntrack-backend-go/internal/config"
	appHTTP "github.com/interntrack/interntrack-backend-go/internal/handler/http"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/clock"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/cron"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/database"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/jwt"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/storage"
	"github.com/interntrack/interntrack-backend-go/internal/repository/postgresql"
	attendanceService "github.com/interntrack/interntrack-backend-go/internal/service/attendance"
	authService "github.com/interntrack/interntrack-backend-go/internal/service/auth"
	"github.com/interntrack/interntrack-backend-go/internal/service/file"
	leaveService "github.com/interntrack/interntrack-backend-go/internal/service/leave"
	"github.com/interntrack/interntrack-backend-go/internal/service/master"
	userService "github.com/interntrack/interntrack-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	loc, err := time.LoadLocation(cfg.Attendance.Timezone)
	if err != nil {
		log.Fatal("Invalid attendance timezone: ", err)
	}
	clk := clock.NewSystemClock(loc)

	rules, err := attendanceService.ParseRules(cfg.Attendance.WorkStart, cfg.Attendance.Cutoff)
	if err != nil {
		log.Fatal("Invalid attendance rules: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	supervisorRepo := postgresql.NewSupervisorRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, leaveRepo, fileService, clk, rules)
	sweeper := attendanceService.NewSweeper(attendanceRepo, clk)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, userRepo)
	userSvc := userService.NewUserService(userRepo, periodRepo)
	masterSvc := master.NewMasterService(periodRepo, supervisorRepo)

	// The sweep fires daily at the cutoff, turning every missed check-in
	// into an ABSENT record.
	cutoff, _ := time.Parse("15:04:05", cfg.Attendance.Cutoff)
	scheduler := cron.NewScheduler()
	scheduler.AddDailyJob("absence-sweep", cutoff.Hour(), cutoff.Minute(), cutoff.Second(), loc, func(ctx context.Context) error {
		_, err := sweeper.Run(ctx)
		return err
	})
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, db, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc, sweeper),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		User:       appHTTP.NewUserHandler(userSvc, attendanceSvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
