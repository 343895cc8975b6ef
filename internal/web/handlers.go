package web

import (
	"net/http"
	"strings"

	"codeberg.org/snonux/aistriu/internal/feedback"
	"codeberg.org/snonux/aistriu/internal/translation"
)

// recentLimit is how many records the feedback listing shows
const recentLimit = 20

// pageData carries state into the HTML templates
type pageData struct {
	Irish      string
	Translated string
	Warning    string
	Error      string
	Success    string
	Records    []feedback.Record
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "index.html", pageData{})
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	irish := strings.TrimSpace(r.FormValue("irish_text"))
	if irish == "" {
		s.render(w, http.StatusOK, "index.html", pageData{
			Warning: "Please enter text to translate.",
		})
		return
	}

	if err := translation.ValidateIrishText(irish); err != nil {
		s.render(w, http.StatusOK, "index.html", pageData{
			Irish:   irish,
			Warning: "Invalid input: " + err.Error(),
		})
		return
	}

	translated, ok := s.cache.Get(irish)
	if !ok {
		var err error
		translated, err = s.provider.Translate(r.Context(), irish)
		if err != nil {
			s.logger.Errorf("Translation failed: %v", err)
			s.render(w, http.StatusBadGateway, "index.html", pageData{
				Irish: irish,
				Error: "Translation failed, please try again later.",
			})
			return
		}
		s.cache.Add(irish, translated)
	}

	s.render(w, http.StatusOK, "index.html", pageData{
		Irish:      irish,
		Translated: translated,
	})
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	irish := strings.TrimSpace(r.FormValue("irish_text"))
	translated := strings.TrimSpace(r.FormValue("translated_text"))
	userFeedback := strings.TrimSpace(r.FormValue("user_feedback"))

	if irish == "" || translated == "" {
		s.render(w, http.StatusOK, "index.html", pageData{
			Warning: "Nothing to give feedback on, translate some text first.",
		})
		return
	}

	if userFeedback == "" {
		// Keep the translation on screen so the user can try again
		s.render(w, http.StatusOK, "index.html", pageData{
			Irish:      irish,
			Translated: translated,
			Warning:    "Please provide feedback before submitting.",
		})
		return
	}

	rec := feedback.NewRecord(irish, translated, userFeedback)

	if err := s.log.Append(rec); err != nil {
		s.logger.Errorf("Failed to save feedback: %v", err)
		s.render(w, http.StatusInternalServerError, "index.html", pageData{
			Irish:      irish,
			Translated: translated,
			Error:      "Failed to save feedback, please try again.",
		})
		return
	}

	// The index is derived and best-effort, the log stays canonical
	if s.store != nil {
		if err := s.store.Insert(rec); err != nil {
			s.logger.Warnf("Failed to index feedback record %s: %v", rec.ID, err)
		}
	}

	s.render(w, http.StatusOK, "index.html", pageData{
		Success: "Thank you! Your feedback has been saved.",
	})
}

func (s *Server) handleRecentFeedback(w http.ResponseWriter, r *http.Request) {
	records, err := s.recentRecords()
	if err != nil {
		s.logger.Errorf("Failed to load recent feedback: %v", err)
		http.Error(w, "failed to load feedback", http.StatusInternalServerError)
		return
	}

	s.render(w, http.StatusOK, "feedback.html", pageData{Records: records})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

// recentRecords prefers the index, falling back to the log when no index
// is available.
func (s *Server) recentRecords() ([]feedback.Record, error) {
	if s.store != nil {
		return s.store.Recent(recentLimit)
	}

	records, err := s.log.ReadAll()
	if err != nil {
		return nil, err
	}

	// Newest first, capped
	var recent []feedback.Record
	for i := len(records) - 1; i >= 0 && len(recent) < recentLimit; i-- {
		recent = append(recent, records[i])
	}
	return recent, nil
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Errorf("Failed to render %s: %v", name, err)
	}
}
