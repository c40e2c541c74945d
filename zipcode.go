package featkit

import (
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go.uber.org/zap"
)

// ZipInfo is the record a ZipDirectory resolves a postal code to.
type ZipInfo struct {
	City   string
	County string
	State  string
	Lat    float64
	Lng    float64
	TZ     string
}

// ZipDirectory resolves postal codes to location records.
type ZipDirectory interface {
	ByCode(code string) (ZipInfo, error)
}

// MapDirectory is an in-memory ZipDirectory.
type MapDirectory map[string]ZipInfo

func (d MapDirectory) ByCode(code string) (ZipInfo, error) {
	info, ok := d[code]
	if !ok {
		return ZipInfo{}, fmt.Errorf("featkit: code %q: %w", code, ErrZipNotFound)
	}
	return info, nil
}

var zipDirColumns = []string{"code", "city", "county", "state", "lat", "lng", "timezone"}

// CSVDirectory loads a zip directory from CSV data with the columns
// code, city, county, state, lat, lng, timezone.
func CSVDirectory(r io.Reader) (MapDirectory, error) {
	df := dataframe.ReadCSV(r, dataframe.WithTypes(map[string]series.Type{
		"code": series.String,
		"lat":  series.Float,
		"lng":  series.Float,
	}))
	if df.Error() != nil {
		return nil, fmt.Errorf("featkit: reading zip directory: %w", df.Error())
	}
	for _, name := range zipDirColumns {
		if !hasColumn(df, name) {
			return nil, fmt.Errorf("featkit: zip directory column %q: %w", name, ErrColumnNotFound)
		}
	}

	codes := df.Col("code").Records()
	cities := df.Col("city").Records()
	counties := df.Col("county").Records()
	states := df.Col("state").Records()
	lats := df.Col("lat").Float()
	lngs := df.Col("lng").Float()
	zones := df.Col("timezone").Records()

	dir := make(MapDirectory, len(codes))
	for i, code := range codes {
		dir[code] = ZipInfo{
			City:   cities[i],
			County: counties[i],
			State:  states[i],
			Lat:    lats[i],
			Lng:    lngs[i],
			TZ:     zones[i],
		}
	}
	return dir, nil
}

// ZipEnrichment returns the generator that joins location data onto a postal
// code column. Each distinct code is resolved once through dir and its
// city/county/state/lat/lng/timezone broadcast to all matching rows as six
// new columns named {column}_city, _county, _state, _lat, _lng, _timezone.
//
// Lookup failures for unknown codes propagate unchanged.
func ZipEnrichment(dir ZipDirectory) Generator { return &zipGenerator{dir: dir} }

type zipGenerator struct {
	dir ZipDirectory
}

func (*zipGenerator) Name() string        { return "ZipCode" }
func (*zipGenerator) FeatureType() string { return "enrichment" }

func (g *zipGenerator) GenerateFeature(df dataframe.DataFrame, column string, opts ...Option) (dataframe.DataFrame, error) {
	set := newSettings(opts)
	if column == "" {
		return dataframe.DataFrame{}, fmt.Errorf("featkit: %s: %w", g.Name(), ErrColumnRequired)
	}
	if !hasColumn(df, column) {
		return dataframe.DataFrame{}, fmt.Errorf("featkit: column %q: %w", column, ErrColumnNotFound)
	}

	codes := df.Col(column).Records()
	infos := make(map[string]ZipInfo, len(codes))
	for _, code := range codes {
		if _, ok := infos[code]; ok {
			continue
		}
		info, err := g.dir.ByCode(code)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		set.log.Debug("resolved postal code", zap.String("code", code), zap.String("city", info.City))
		infos[code] = info
	}

	n := len(codes)
	cities := make([]string, n)
	counties := make([]string, n)
	states := make([]string, n)
	lats := make([]float64, n)
	lngs := make([]float64, n)
	zones := make([]string, n)
	for i, code := range codes {
		info := infos[code]
		cities[i] = info.City
		counties[i] = info.County
		states[i] = info.State
		lats[i] = info.Lat
		lngs[i] = info.Lng
		zones[i] = info.TZ
	}

	df = df.Mutate(series.New(cities, series.String, column+"_city"))
	df = df.Mutate(series.New(counties, series.String, column+"_county"))
	df = df.Mutate(series.New(states, series.String, column+"_state"))
	df = df.Mutate(series.New(lats, series.Float, column+"_lat"))
	df = df.Mutate(series.New(lngs, series.Float, column+"_lng"))
	df = df.Mutate(series.New(zones, series.String, column+"_timezone"))
	return df, df.Error()
}
