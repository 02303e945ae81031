package models

type Area struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func DefaultAreas() []*Area {
	names := []string{
		"Local University Campus",
		"Nelspruit CBD",
		"White River",
		"Mbombela Stadium",
		"Riverside Mall",
		"Ilanga Mall",
		"Lowveld High School",
		"Nelspruit Hospital",
		"Kruger Mpumalanga Airport",
	}
	areas := make([]*Area, 0, len(names))
	for i, n := range names {
		areas = append(areas, &Area{ID: int64(i + 1), Name: n})
	}
	return areas
}
