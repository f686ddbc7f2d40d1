package db

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	citystore "pv-leads-backend/lib/dicts/city/store"
	departmentstore "pv-leads-backend/lib/dicts/department/store"
	regionstore "pv-leads-backend/lib/dicts/region/store"
	"pv-leads-backend/lib/seo"
	dbmodels "pv-leads-backend/models/db"
)

const (
	regionFile     = "regions.csv"
	departmentFile = "departments.csv"
	cityFile       = "cities.csv"
)

// regions.csv: name
func fillRegions(dir string) {
	store := regionstore.NewInstance(DB)
	list, err := store.List(false)
	if err != nil {
		log.WithError(err).Error("erreur de préchargement des régions")
		return
	}
	if len(list) > 0 {
		return
	}
	lines, err := readCsvFile(filepath.Join(dir, regionFile), ';')
	if err != nil {
		log.WithError(err).Warn("fichier des régions non chargé")
		return
	}
	for k, line := range lines {
		rec := dbmodels.Region{Name: line[0], Slug: seo.Slugify(line[0]), Active: true}
		if _, err = store.Create(rec); err != nil {
			log.WithError(err).Errorf("erreur d'ajout de la région, ligne %v", k+2)
			return
		}
	}
	log.WithField("count", len(lines)).Info("régions ajoutées")
}

// departments.csv: code;name;region name
func fillDepartments(dir string) {
	store := departmentstore.NewInstance(DB)
	list, err := store.List(false)
	if err != nil {
		log.WithError(err).Error("erreur de préchargement des départements")
		return
	}
	if len(list) > 0 {
		return
	}
	lines, err := readCsvFile(filepath.Join(dir, departmentFile), ';')
	if err != nil {
		log.WithError(err).Warn("fichier des départements non chargé")
		return
	}
	regionStore := regionstore.NewInstance(DB)
	for k, line := range lines {
		region, err := regionStore.FindByName(line[2])
		if err != nil || region == nil {
			log.WithError(err).Errorf("région %q inconnue, ligne %v", line[2], k+2)
			continue
		}
		rec := dbmodels.Department{
			Code:     line[0],
			Name:     line[1],
			Slug:     seo.Slugify(line[1]),
			RegionID: region.ID,
			Active:   true,
		}
		if _, err = store.Create(rec); err != nil {
			log.WithError(err).Errorf("erreur d'ajout du département, ligne %v", k+2)
			return
		}
	}
	log.WithField("count", len(lines)).Info("départements ajoutés")
}

// cities.csv: name;postal code;department;region;population;latitude;longitude
func fillCities(dir string) {
	log.Info("préchargement des villes")
	cityStore := citystore.NewInstance(DB)
	count, err := cityStore.Count()
	if err != nil {
		log.WithError(err).Error("erreur de préchargement des villes")
		return
	}
	if count > 0 {
		log.Info("villes déjà chargées")
		return
	}
	lines, err := readCsvFile(filepath.Join(dir, cityFile), ';')
	if err != nil {
		log.WithError(err).Warn("fichier des villes non chargé")
		return
	}
	created := 0
	for k, line := range lines {
		rec, err := parseCityLine(line)
		if err != nil {
			log.WithError(err).Errorf("erreur de lecture du fichier des villes, ligne %v", k+2)
			continue
		}
		id, err := cityStore.Create(rec, true)
		if err != nil {
			log.
				WithError(err).
				WithField("name", rec.Name).
				Error("erreur d'ajout de la ville")
			continue
		}
		if id != "" {
			created++
		}
	}
	log.WithField("count", created).Info("villes ajoutées")
}

func parseCityLine(line []string) (dbmodels.City, error) {
	if len(line) < 7 {
		return dbmodels.City{}, errors.Errorf("7 colonnes attendues, %v reçues", len(line))
	}
	rec := dbmodels.City{
		Name:       line[0],
		Slug:       seo.Slugify(line[0] + " " + line[1]),
		PostalCode: line[1],
		Department: line[2],
		Region:     line[3],
	}
	if value := strings.TrimSpace(line[4]); value != "" {
		population, err := strconv.Atoi(value)
		if err != nil {
			return dbmodels.City{}, errors.Wrap(err, "population invalide")
		}
		rec.Population = &population
	}
	if strings.TrimSpace(line[5]) != "" && strings.TrimSpace(line[6]) != "" {
		lat, err := strconv.ParseFloat(strings.TrimSpace(line[5]), 64)
		if err != nil {
			return dbmodels.City{}, errors.Wrap(err, "latitude invalide")
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(line[6]), 64)
		if err != nil {
			return dbmodels.City{}, errors.Wrap(err, "longitude invalide")
		}
		rec.Latitude = &lat
		rec.Longitude = &lon
	}
	return rec, rec.Validate()
}

// readCsvFile skips the header line.
func readCsvFile(filePath string, comma rune) ([][]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "erreur d'ouverture du fichier")
	}
	defer f.Close()

	csvReader := csv.NewReader(f)
	csvReader.Comma = comma
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erreur de lecture du fichier")
	}
	if len(records) > 0 {
		records = records[1:]
	}
	return records, nil
}
