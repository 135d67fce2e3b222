package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/archaeoscan/fieldmap/pkg/core"
)

const kmlNamespace = "http://www.opengis.net/kml/2.2"

type kmlDocument struct {
	XMLName  xml.Name `xml:"kml"`
	Xmlns    string   `xml:"xmlns,attr"`
	Document kmlBody  `xml:"Document"`
}

type kmlBody struct {
	Name       string         `xml:"name"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	ID           string       `xml:"id,attr"`
	Name         string       `xml:"name"`
	Description  string       `xml:"description,omitempty"`
	TimeStamp    kmlTimeStamp `xml:"TimeStamp"`
	ExtendedData kmlExtended  `xml:"ExtendedData"`
	Point        kmlPoint     `xml:"Point"`
}

type kmlTimeStamp struct {
	When string `xml:"when"`
}

type kmlExtended struct {
	Data []kmlData `xml:"Data"`
}

type kmlData struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value"`
}

type kmlPoint struct {
	Coordinates string `xml:"coordinates"`
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// KML writes objects as a KML 2.2 document with one Placemark per object.
// Depth is carried as negative altitude relative to ground.
func KML(w io.Writer, objects []core.FoundObject) error {
	doc := kmlDocument{
		Xmlns:    kmlNamespace,
		Document: kmlBody{Name: "Survey finds"},
	}
	for _, o := range objects {
		data := []kmlData{
			{Name: "type", Value: string(o.Type)},
			{Name: "depth", Value: formatFloat(o.Depth)},
			{Name: "confidence", Value: formatFloat(o.Confidence)},
		}
		for _, kv := range [][2]string{
			{"material", o.Properties.Material},
			{"era", o.Properties.Era},
			{"size", o.Properties.Size},
			{"condition", o.Properties.Condition},
		} {
			if kv[1] != "" {
				data = append(data, kmlData{Name: kv[0], Value: kv[1]})
			}
		}
		doc.Document.Placemarks = append(doc.Document.Placemarks, kmlPlacemark{
			ID:           o.ID,
			Name:         o.Name,
			Description:  o.Description,
			TimeStamp:    kmlTimeStamp{When: o.DiscoveredAt.UTC().Format("2006-01-02T15:04:05Z")},
			ExtendedData: kmlExtended{Data: data},
			Point: kmlPoint{Coordinates: strings.Join([]string{
				formatFloat(o.Longitude), formatFloat(o.Latitude), formatFloat(-o.Depth),
			}, ",")},
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write kml header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode kml: %w", err)
	}
	return nil
}
