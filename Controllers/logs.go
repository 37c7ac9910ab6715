package Controllers

import (
	"bufio"
	"encoding/json"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"Crane/middleware"
)

// RouteStats summarizes the request log for one method+path pair.
type RouteStats struct {
	Method      string  `json:"method"`
	Path        string  `json:"path"`
	Count       int     `json:"count"`
	AvgLatency  float64 `json:"avg_latency_ms"`
	MaxLatency  float64 `json:"max_latency_ms"`
	SuccessRate float64 `json:"success_rate"`
}

// GetRequestLogs reads the JSON request log back, filtered by date range,
// path substring and status, newest first.
func GetRequestLogs(c *fiber.Ctx) error {
	dateFrom, dateTo, err := logDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "200"))
	if limit < 1 || limit > 1000 {
		limit = 200
	}
	pathFilter := strings.ToLower(c.Query("path"))
	statusFilter, _ := strconv.Atoi(c.Query("status"))

	entries, err := readRequestLog(dateFrom, dateTo)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read request log"})
	}

	filtered := entries[:0]
	for _, entry := range entries {
		if pathFilter != "" && !strings.Contains(strings.ToLower(entry.Path), pathFilter) {
			continue
		}
		if statusFilter != 0 && entry.Status != statusFilter {
			continue
		}
		filtered = append(filtered, entry)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.After(filtered[j].Timestamp)
	})
	total := len(filtered)
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	return c.JSON(fiber.Map{
		"logs":      filtered,
		"total":     total,
		"date_from": dateFrom,
		"date_to":   dateTo,
	})
}

// GetRequestLogStats groups the log by method+path with latency and success
// figures, busiest routes first.
func GetRequestLogStats(c *fiber.Ctx) error {
	dateFrom, dateTo, err := logDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entries, err := readRequestLog(dateFrom, dateTo)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read request log"})
	}

	type acc struct {
		stats        RouteStats
		totalLatency float64
		successes    int
	}
	byRoute := make(map[string]*acc)
	for _, entry := range entries {
		key := entry.Method + " " + entry.Path
		a, ok := byRoute[key]
		if !ok {
			a = &acc{stats: RouteStats{Method: entry.Method, Path: entry.Path}}
			byRoute[key] = a
		}
		latencyMs := float64(entry.Latency.Microseconds()) / 1000.0
		a.stats.Count++
		a.totalLatency += latencyMs
		if latencyMs > a.stats.MaxLatency {
			a.stats.MaxLatency = latencyMs
		}
		if entry.Status >= 200 && entry.Status < 300 {
			a.successes++
		}
	}

	stats := make([]RouteStats, 0, len(byRoute))
	for _, a := range byRoute {
		a.stats.AvgLatency = a.totalLatency / float64(a.stats.Count)
		a.stats.SuccessRate = float64(a.successes) / float64(a.stats.Count)
		stats = append(stats, a.stats)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	return c.JSON(fiber.Map{
		"routes":    stats,
		"date_from": dateFrom,
		"date_to":   dateTo,
	})
}

func logDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	dateFrom := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateTo := now

	if raw := c.Query("date_from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return dateFrom, dateTo, fiber.NewError(fiber.StatusBadRequest, "Invalid date_from format. Use YYYY-MM-DD")
		}
		dateFrom = parsed
	}
	if raw := c.Query("date_to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return dateFrom, dateTo, fiber.NewError(fiber.StatusBadRequest, "Invalid date_to format. Use YYYY-MM-DD")
		}
		dateTo = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 23, 59, 59, 0, parsed.Location())
	}
	return dateFrom, dateTo, nil
}

func readRequestLog(dateFrom, dateTo time.Time) ([]middleware.LogData, error) {
	file, err := os.Open(middleware.RequestLogFile)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []middleware.LogData
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry middleware.LogData
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		if entry.Timestamp.Before(dateFrom) || entry.Timestamp.After(dateTo) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, scanner.Err()
}
