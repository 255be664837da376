package noise

// PlanetParams holds every tunable of the composite planet field. The
// terrain shapes (continents, mountains, rivers, badlands) were tuned against
// these exact numbers.
type PlanetParams struct {
	Seed uint32 `yaml:"seed"`

	ContinentFrequency  float64 `yaml:"continent_frequency"`
	ContinentLacunarity float64 `yaml:"continent_lacunarity"`
	MountainLacunarity  float64 `yaml:"mountain_lacunarity"`
	HillsLacunarity     float64 `yaml:"hills_lacunarity"`
	PlainsLacunarity    float64 `yaml:"plains_lacunarity"`
	BadlandsLacunarity  float64 `yaml:"badlands_lacunarity"`

	MountainsTwist float64 `yaml:"mountains_twist"`
	HillsTwist     float64 `yaml:"hills_twist"`
	BadlandsTwist  float64 `yaml:"badlands_twist"`

	SeaLevel           float64 `yaml:"sea_level"`
	ShelfLevel         float64 `yaml:"shelf_level"`
	MountainsAmount    float64 `yaml:"mountains_amount"`
	BadlandsAmount     float64 `yaml:"badlands_amount"`
	TerrainOffset      float64 `yaml:"terrain_offset"`
	MountainGlaciation float64 `yaml:"mountain_glaciation"`
	RiverDepth         float64 `yaml:"river_depth"`
}

// DefaultPlanetParams returns the tuned constants for seed.
func DefaultPlanetParams(seed uint32) PlanetParams {
	return PlanetParams{
		Seed:                seed,
		ContinentFrequency:  1.0,
		ContinentLacunarity: 2.208984375,
		MountainLacunarity:  2.142578125,
		HillsLacunarity:     2.162109375,
		PlainsLacunarity:    2.314453125,
		BadlandsLacunarity:  2.212890625,
		MountainsTwist:      1.0,
		HillsTwist:          1.0,
		BadlandsTwist:       1.0,
		SeaLevel:            0.0,
		ShelfLevel:          -0.375,
		MountainsAmount:     0.5,
		BadlandsAmount:      0.3125,
		TerrainOffset:       1.0,
		MountainGlaciation:  1.375,
		RiverDepth:          0.0234375,
	}
}

// HillsAmount sits halfway between the mountain threshold and the top.
func (p PlanetParams) HillsAmount() float64 { return (1 + p.MountainsAmount) / 2 }

// ContinentHeightScale is the elevation above sea level a continent reaches.
func (p PlanetParams) ContinentHeightScale() float64 { return (1 - p.SeaLevel) / 4 }

// Validate rejects constants the planet graph cannot be built from.
func (p PlanetParams) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"continent_frequency", p.ContinentFrequency},
		{"continent_lacunarity", p.ContinentLacunarity},
		{"mountain_lacunarity", p.MountainLacunarity},
		{"hills_lacunarity", p.HillsLacunarity},
		{"plains_lacunarity", p.PlainsLacunarity},
		{"badlands_lacunarity", p.BadlandsLacunarity},
		{"mountain_glaciation", p.MountainGlaciation},
	}
	for _, f := range positive {
		if !(f.v > 0) {
			return &ParameterError{Module: "planet", Param: f.name, Value: f.v, Reason: "must be positive"}
		}
	}
	if !(p.MountainsAmount > 0 && p.MountainsAmount < 1) {
		return &ParameterError{Module: "planet", Param: "mountains_amount", Value: p.MountainsAmount, Reason: "must be within (0, 1)"}
	}
	if !(p.BadlandsAmount > 0 && p.BadlandsAmount < 1) {
		return &ParameterError{Module: "planet", Param: "badlands_amount", Value: p.BadlandsAmount, Reason: "must be within (0, 1)"}
	}
	if !(p.ShelfLevel > -0.75 && p.ShelfLevel < p.SeaLevel) {
		return &ParameterError{Module: "planet", Param: "shelf_level", Value: p.ShelfLevel, Reason: "must lie between -0.75 and sea level"}
	}
	if !(p.SeaLevel < 1) {
		return &ParameterError{Module: "planet", Param: "sea_level", Value: p.SeaLevel, Reason: "must be below 1"}
	}
	return nil
}

// planetBuilder records the first construction error so the graph below can
// be written as straight-line code.
type planetBuilder struct {
	err error
}

func (b *planetBuilder) keep(src Source, err error) Source {
	if err != nil && b.err == nil {
		b.err = err
	}
	return src
}

func (b *planetBuilder) fbm(seed uint32, freq, lac float64, octaves int) Source {
	p := Fractal(seed)
	p.Frequency, p.Lacunarity, p.Octaves = freq, lac, octaves
	f, err := NewFbm(p)
	return b.keep(f, err)
}

func (b *planetBuilder) billow(seed uint32, freq, lac float64, octaves int) Source {
	p := Fractal(seed)
	p.Frequency, p.Lacunarity, p.Octaves = freq, lac, octaves
	f, err := NewBillow(p)
	return b.keep(f, err)
}

func (b *planetBuilder) ridged(seed uint32, freq, lac float64, octaves int) Source {
	p, att := Ridged(seed)
	p.Frequency, p.Lacunarity, p.Octaves = freq, lac, octaves
	r, err := NewRidgedMulti(p, att)
	return b.keep(r, err)
}

func (b *planetBuilder) worley(seed uint32, freq float64) Source {
	w, err := NewWorley(seed, freq)
	return b.keep(w, err)
}

func (b *planetBuilder) turbulence(src Source, seed uint32, freq, power float64, roughness int) Source {
	t, err := NewTurbulence(src, seed, freq, power, roughness)
	return b.keep(t, err)
}

func (b *planetBuilder) curve(src Source, points ...ControlPoint) Source {
	c, err := NewCurve(src, points...)
	return b.keep(c, err)
}

func (b *planetBuilder) terrace(src Source, points ...float64) Source {
	t, err := NewTerrace(src, points...)
	return b.keep(t, err)
}

func (b *planetBuilder) sel(a, bb, control Source, lower, upper, falloff float64) Source {
	s, err := NewSelect(a, bb, control, lower, upper, falloff)
	return b.keep(s, err)
}

func scaleBias(src Source, scale, bias float64) Source {
	return &ScaleBias{Source: src, Scale: scale, Bias: bias}
}

// BuildPlanet assembles the composite elevation field. The result is not
// clamped; values fall roughly in [-1, 1] with sea level at p.SeaLevel.
func BuildPlanet(p PlanetParams) (Source, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := &planetBuilder{}
	s := p.Seed
	cf := p.ContinentFrequency
	sea := p.SeaLevel
	shelf := p.ShelfLevel
	chs := p.ContinentHeightScale()

	// continents
	baseContinent := NewCache(&Clamp{
		Source: &Min{
			A: scaleBias(b.fbm(s+1, cf*4.34375, p.ContinentLacunarity, 11), 0.375, 0.625),
			B: b.curve(b.fbm(s, cf, p.ContinentLacunarity, 14),
				ControlPoint{-2.0000 + sea, -1.625 + sea},
				ControlPoint{-1.0000 + sea, -1.375 + sea},
				ControlPoint{0.0000 + sea, -0.375 + sea},
				ControlPoint{0.0625 + sea, 0.125 + sea},
				ControlPoint{0.1250 + sea, 0.250 + sea},
				ControlPoint{0.2500 + sea, 1.000 + sea},
				ControlPoint{0.5000 + sea, 0.250 + sea},
				ControlPoint{0.7500 + sea, 0.250 + sea},
				ControlPoint{1.0000 + sea, 0.500 + sea},
				ControlPoint{2.0000 + sea, 0.500 + sea},
			),
		},
		Lower: -1, Upper: 1,
	})
	warped := b.turbulence(baseContinent, s+10, cf*15.25, cf/113.75, 13)
	warped = b.turbulence(warped, s+11, cf*47.25, cf/433.75, 12)
	warped = b.turbulence(warped, s+12, cf*95.25, cf/1019.75, 11)
	continent := NewCache(b.sel(baseContinent, warped, baseContinent, sea-0.0375, sea+1000.0375, 0.0625))

	// terrain type: which terrain wins where
	terrainType := NewCache(b.terrace(
		b.turbulence(continent, s+20, cf*18.125, cf/20.59375*p.TerrainOffset, 3),
		-1.0, shelf+sea/2, 1.0,
	))

	// mountains
	mountainBase := b.turbulence(&Blend{
		A:       Constant(-1),
		B:       scaleBias(b.ridged(s+30, 1723.0, p.MountainLacunarity, 4), 0.5, 0.375),
		Control: scaleBias(b.ridged(s+31, 367.0, p.MountainLacunarity, 1), -2.0, -0.5),
	}, s+32, 1337.0, 1.0/6730.0*p.MountainsTwist, 4)
	mountainBaseDef := NewCache(b.turbulence(mountainBase, s+33, 21221.0, 1.0/120157.0*p.MountainsTwist, 6))

	mountainsHigh := NewCache(b.turbulence(&Max{
		A: b.ridged(s+40, 2371.0, p.MountainLacunarity, 3),
		B: b.ridged(s+41, 2341.0, p.MountainLacunarity, 3),
	}, s+42, 31511.0, 1.0/180371.0*p.MountainsTwist, 4))

	mountainsLow := NewCache(&Multiply{
		A: b.ridged(s+50, 1381.0, p.MountainLacunarity, 8),
		B: b.ridged(s+51, 1427.0, p.MountainLacunarity, 8),
	})

	mountainous := NewCache(&Exponent{
		Source: scaleBias(b.sel(
			scaleBias(mountainsLow, 0.03125, -0.96875),
			&Add{A: scaleBias(mountainsHigh, 0.25, 0.25), B: mountainBaseDef},
			mountainBaseDef,
			-0.5, 999.5, 0.5,
		), 0.8, 0),
		Exponent: p.MountainGlaciation,
	})

	// hills
	hills := b.turbulence(&Exponent{
		Source: scaleBias(&Blend{
			A:       Constant(-1),
			B:       scaleBias(b.ridged(s+61, 367.5, p.HillsLacunarity, 1), -2.0, -1.0),
			Control: scaleBias(b.billow(s+60, 1663.0, p.HillsLacunarity, 6), 0.5, 0.5),
		}, 0.75, -0.25),
		Exponent: 1.375,
	}, s+62, 1531.0, 1.0/16921.0*p.HillsTwist, 4)
	hilly := NewCache(b.turbulence(hills, s+63, 21617.0, 1.0/117529.0*p.HillsTwist, 6))

	// plains
	plains := NewCache(scaleBias(&Multiply{
		A: scaleBias(b.billow(s+70, 1097.5, p.PlainsLacunarity, 8), 0.5, 0.5),
		B: scaleBias(b.billow(s+71, 1097.5, p.PlainsLacunarity, 8), 0.5, 0.5),
	}, 2.0, -1.0))

	// badlands
	sand := NewCache(&Add{
		A: scaleBias(b.ridged(s+80, 6163.5, p.BadlandsLacunarity, 1), 0.875, 0),
		B: scaleBias(b.worley(s+81, 16183.25), 0.25, 0.25),
	})
	cliffs := b.terrace(
		&Clamp{
			Source: b.curve(b.fbm(s+90, cf*839.0, p.BadlandsLacunarity, 6),
				ControlPoint{-2.000, -2.000},
				ControlPoint{-1.000, -1.000},
				ControlPoint{-0.000, -0.750},
				ControlPoint{0.500, -0.250},
				ControlPoint{0.625, 0.875},
				ControlPoint{0.750, 1.000},
				ControlPoint{2.000, 1.250},
			),
			Lower: -999.125, Upper: 0.875,
		},
		-1.000, -0.875, -0.750, -0.500, 0.000, 1.000,
	)
	cliffs = b.turbulence(cliffs, s+91, 16111.0, 1.0/141539.0*p.BadlandsTwist, 3)
	badlandsCliffs := NewCache(b.turbulence(cliffs, s+92, 36107.0, 1.0/211543.0*p.BadlandsTwist, 3))
	badlands := NewCache(&Max{A: badlandsCliffs, B: scaleBias(sand, 0.25, -0.75)})

	// rivers
	rivers := NewCache(b.turbulence(&Min{
		A: b.curve(b.ridged(s+100, 18.75, p.ContinentLacunarity, 1),
			ControlPoint{-2.000, 2.000},
			ControlPoint{-1.000, 1.000},
			ControlPoint{-0.125, 0.875},
			ControlPoint{0.000, -1.000},
			ControlPoint{1.000, -1.500},
			ControlPoint{2.000, -2.000},
		),
		B: b.curve(b.ridged(s+101, 43.25, p.ContinentLacunarity, 1),
			ControlPoint{-2.000, 2.0000},
			ControlPoint{-1.000, 1.5000},
			ControlPoint{-0.125, 1.4375},
			ControlPoint{0.000, 0.5000},
			ControlPoint{1.000, 0.2500},
			ControlPoint{2.000, 0.0000},
		),
	}, s+102, 9.25, 1.0/57.75, 6))

	// scaled terrain layers
	scaledMountainous := NewCache(&Multiply{
		A: scaleBias(mountainous, 0.125, 0.125),
		B: scaleBias(&Exponent{Source: b.fbm(s+110, 14.5, p.MountainLacunarity, 6), Exponent: 1.25}, 0.25, 1.0),
	})
	scaledHilly := NewCache(&Multiply{
		A: scaleBias(hilly, 0.0625, 0.0625),
		B: scaleBias(&Exponent{Source: b.fbm(s+120, 13.5, p.HillsLacunarity, 6), Exponent: 1.25}, 0.5, 1.5),
	})
	scaledPlains := NewCache(scaleBias(plains, 0.00390625, 0.0078125))
	scaledBadlands := NewCache(scaleBias(badlands, 0.0625, 0.0625))

	// base elevation with continental shelves
	shelfSrc := NewCache(&Add{
		A: scaleBias(b.ridged(s+130, cf*4.375, p.ContinentLacunarity, 16), -0.125, -0.125),
		B: &Clamp{Source: b.terrace(continent, -1.0, -0.75, shelf, 1.0), Lower: -0.75, Upper: sea},
	})
	baseElevation := NewCache(b.sel(scaleBias(continent, chs, 0), shelfSrc, continent, shelf-1000.0, shelf, 0.03125))

	// layer terrain types onto the continents
	withPlains := NewCache(&Add{A: baseElevation, B: scaledPlains})
	withHills := NewCache(b.sel(
		withPlains,
		&Add{A: baseElevation, B: scaledHilly},
		terrainType,
		1.0-p.HillsAmount(), 1001.0-p.HillsAmount(), 0.25,
	))
	withMountains := NewCache(b.sel(
		withHills,
		&Add{
			A: &Add{A: baseElevation, B: scaledMountainous},
			B: b.curve(continent,
				ControlPoint{-1.0, -0.0625},
				ControlPoint{0.0, 0.0000},
				ControlPoint{1.0 - p.MountainsAmount, 0.0625},
				ControlPoint{1.0, 0.2500},
			),
		},
		terrainType,
		1.0-p.MountainsAmount, 1001.0-p.MountainsAmount, 0.25,
	))
	withBadlands := NewCache(&Max{
		A: withMountains,
		B: b.sel(
			withMountains,
			&Add{A: baseElevation, B: scaledBadlands},
			b.fbm(s+140, 16.5, p.ContinentLacunarity, 2),
			1.0-p.BadlandsAmount, 1001.0-p.BadlandsAmount, 0.25,
		),
	})
	withRivers := NewCache(b.sel(
		withBadlands,
		&Add{A: withBadlands, B: scaleBias(rivers, p.RiverDepth/2, -p.RiverDepth/2)},
		withBadlands,
		sea, chs+sea, chs-sea,
	))

	if b.err != nil {
		return nil, b.err
	}
	return withRivers, nil
}
