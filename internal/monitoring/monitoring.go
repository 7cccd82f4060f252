package monitoring

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ArtifactInfo describe un artefacto precomputado cargado en memoria.
type ArtifactInfo struct {
	Nombre    string `json:"nombre"`
	Cacheado  bool   `json:"cacheado"`
	Dimension int    `json:"dimension"`
}

// SystemStats agrupa las métricas del proceso y del host.
type SystemStats struct {
	// Proceso
	NumGoroutine int    `json:"num_goroutine"`
	Alloc        uint64 `json:"alloc_bytes"`
	Sys          uint64 `json:"sys_bytes"`
	NumGC        uint32 `json:"num_gc"`

	// Host
	TotalRAM        uint64    `json:"total_ram"`
	AvailableRAM    uint64    `json:"available_ram"`
	UsedRAMPercent  float64   `json:"used_ram_percent"`
	TotalCPUCores   int       `json:"total_cpu_cores"`
	CPUUsagePercent []float64 `json:"cpu_usage_percent"`
}

// MonitoringStatus es la respuesta del endpoint de monitoreo.
type MonitoringStatus struct {
	Timestamp  time.Time      `json:"timestamp"`
	Artefactos []ArtifactInfo `json:"artefactos"`
	System     SystemStats    `json:"system"`
}

type Service interface {
	GetStatus(ctx context.Context) MonitoringStatus
}

type monitoringService struct {
	artefactos []ArtifactInfo
}

// NewService arma el servicio de monitoreo. Los artefactos son inmutables
// después del arranque, así que se registran una sola vez.
func NewService(artefactos []ArtifactInfo) Service {
	return &monitoringService{artefactos: artefactos}
}

func (s *monitoringService) GetStatus(ctx context.Context) MonitoringStatus {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	vMem, _ := mem.VirtualMemoryWithContext(ctx)
	cpuPercent, _ := cpu.PercentWithContext(ctx, 0, true)

	sysStats := SystemStats{
		NumGoroutine:    runtime.NumGoroutine(),
		Alloc:           memStats.Alloc,
		Sys:             memStats.Sys,
		NumGC:           memStats.NumGC,
		TotalCPUCores:   runtime.NumCPU(),
		CPUUsagePercent: cpuPercent,
	}
	if vMem != nil {
		sysStats.TotalRAM = vMem.Total
		sysStats.AvailableRAM = vMem.Available
		sysStats.UsedRAMPercent = vMem.UsedPercent
	}

	return MonitoringStatus{
		Timestamp:  time.Now(),
		Artefactos: s.artefactos,
		System:     sysStats,
	}
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("/monitoring", h.GetMonitoringStatus)
}

func (h *Handler) GetMonitoringStatus(c *gin.Context) {
	status := h.svc.GetStatus(c.Request.Context())
	c.JSON(http.StatusOK, status)
}
