package cmd

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/jsphweid/trackdex/constants"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveFlags struct {
	dir  string
	addr string
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.dir, "dir", "extracted_tracks", "Output directory holding the extraction log")
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the extraction log over HTTP",
	Long:  `Serves the extraction log over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// SetServeDir points the handlers at a different output directory. Used
// by tests.
func SetServeDir(dir string) {
	serveFlags.dir = dir
}

func HandleLog(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(filepath.Join(serveFlags.dir, constants.LogFilename))
	if err != nil {
		http.Error(w, "No extraction log found", 404)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func HandleReport(w http.ResponseWriter, r *http.Request) {
	entries, err := readLog(serveFlags.dir)
	if err != nil {
		http.Error(w, "No extraction log found", 404)
		return
	}

	perInstrument := make(map[string]int)
	var duplicates int
	for _, entry := range entries {
		perInstrument[entry.Instrument]++
		if entry.IsDuplicate {
			duplicates++
		}
	}

	res := map[string]any{
		"entries":        len(entries),
		"unique_tracks":  len(entries) - duplicates,
		"duplicates":     duplicates,
		"per_instrument": perInstrument,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/log", HandleLog).Methods("GET")
	router.HandleFunc("/report", HandleReport).Methods("GET")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(serveFlags.addr, handler))
}
