// Package dailyreportservice keeps one site diary per (project, user, day).
// A report is created lazily on first use and collects ordered photo and
// note entries; photo entries carry storage refs, not bytes.
package dailyreportservice
