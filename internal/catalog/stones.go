package catalog

import "github.com/KirkDiggler/megastones/internal/domain/shared"

// StartIDNumber is the first numeric item id handed to stones
const StartIDNumber = 6000

func mysterious(species string) string {
	return "A mysterious stone. Have " + species + " or a fusion containing it hold this to unlock its true potential!"
}

// builtinStones is in registration order. Abilities missing from the host game were
// replaced with the closest ability it does have (Mega Launcher, Parental Bond,
// Aerilate and Delta Stream have no host equivalent).
var builtinStones = []Stone{
	{Token: "CHARIZARDITE_X", Name: "Charizardite X", Description: mysterious("Charizard"), Rule: Rule{Species: "CHARIZARD", Types: [2]shared.ElementType{"FIRE", "DRAGON"}, Ability: "TOUGHCLAWS", Add: map[shared.Stat]int{shared.StatAttack: 46, shared.StatDefense: 33, shared.StatSpecialAttack: 21}}},
	{Token: "CHARIZARDITE_Y", Name: "Charizardite Y", Description: mysterious("Charizard"), Rule: Rule{Species: "CHARIZARD", Types: [2]shared.ElementType{"FIRE", "FLYING"}, Ability: "DROUGHT", Add: map[shared.Stat]int{shared.StatAttack: 20, shared.StatSpecialAttack: 50, shared.StatSpecialDefense: 30}}},
	{Token: "GENGARITE", Name: "Gengarite", Description: mysterious("Gengar"), Rule: Rule{Species: "GENGAR", Types: [2]shared.ElementType{"GHOST", "POISON"}, Ability: "SHADOWTAG", Add: map[shared.Stat]int{shared.StatDefense: 20, shared.StatSpecialAttack: 40, shared.StatSpecialDefense: 20, shared.StatSpeed: 20}}},
	{Token: "LOPUNNITE", Name: "Lopunnite", Description: mysterious("Lopunny"), Rule: Rule{Species: "LOPUNNY", Types: [2]shared.ElementType{"NORMAL", "FIGHTING"}, Ability: "SCRAPPY", Add: map[shared.Stat]int{shared.StatAttack: 60, shared.StatDefense: 10, shared.StatSpeed: 30}}},
	{Token: "ABSOLITE", Name: "Absolite", Description: mysterious("Absol"), Rule: Rule{Species: "ABSOL", Types: [2]shared.ElementType{"DARK", "DARK"}, Ability: "MAGICBOUNCE", Add: map[shared.Stat]int{shared.StatAttack: 20, shared.StatSpecialAttack: 40, shared.StatSpeed: 40}}},
	{Token: "AERODACTYLITE", Name: "Aerodactylite", Description: mysterious("Aerodactyl"), Rule: Rule{Species: "AERODACTYL", Types: [2]shared.ElementType{"ROCK", "FLYING"}, Ability: "TOUGHCLAWS", Add: map[shared.Stat]int{shared.StatAttack: 30, shared.StatDefense: 20, shared.StatSpecialAttack: 10, shared.StatSpecialDefense: 20, shared.StatSpeed: 20}}},
	{Token: "AGGRONITE", Name: "Aggronite", Description: mysterious("Aggron"), Rule: Rule{Species: "AGGRON", Types: [2]shared.ElementType{"STEEL", "STEEL"}, Ability: "FILTER", Add: map[shared.Stat]int{shared.StatAttack: 30, shared.StatDefense: 50, shared.StatSpecialDefense: 20}}},
	{Token: "ALAKAZITE", Name: "Alakazite", Description: mysterious("Alakazam"), Rule: Rule{Species: "ALAKAZAM", Types: [2]shared.ElementType{"PSYCHIC", "PSYCHIC"}, Ability: "TRACE", Add: map[shared.Stat]int{shared.StatDefense: 20, shared.StatSpecialAttack: 40, shared.StatSpecialDefense: 10, shared.StatSpeed: 30}}},
	{Token: "ALTARIANITE", Name: "Altarianite", Description: mysterious("Altaria"), Rule: Rule{Species: "ALTARIA", Types: [2]shared.ElementType{"DRAGON", "FAIRY"}, Ability: "PIXILATE", Add: map[shared.Stat]int{shared.StatAttack: 40, shared.StatDefense: 20, shared.StatSpecialAttack: 40}}},
	{Token: "AMPHAROSITE", Name: "Ampharosite", Description: mysterious("Ampharos"), Rule: Rule{Species: "AMPHAROS", Types: [2]shared.ElementType{"ELECTRIC", "DRAGON"}, Ability: "MOLDBREAKER", Add: map[shared.Stat]int{shared.StatAttack: 20, shared.StatDefense: 20, shared.StatSpecialAttack: 50, shared.StatSpecialDefense: 20, shared.StatSpeed: -10}}},
	{Token: "BANETTITE", Name: "Banettite", Description: mysterious("Banette"), Rule: Rule{Species: "BANETTE", Types: [2]shared.ElementType{"GHOST", "GHOST"}, Ability: "PRANKSTER", Add: map[shared.Stat]int{shared.StatAttack: 50, shared.StatDefense: 10, shared.StatSpecialAttack: 10, shared.StatSpecialDefense: 20, shared.StatSpeed: 10}}},
	{Token: "BEEDRILLITE", Name: "Beedrillite", Description: mysterious("Beedrill"), Rule: Rule{Species: "BEEDRILL", Types: [2]shared.ElementType{"BUG", "POISON"}, Ability: "ADAPTABILITY", Add: map[shared.Stat]int{shared.StatAttack: 60, shared.StatSpecialAttack: -30, shared.StatSpeed: 70}}},
	{Token: "BLASTOISINITE", Name: "Blastoisinite", Description: mysterious("Blastoise"), Rule: Rule{Species: "BLASTOISE", Types: [2]shared.ElementType{"WATER", "WATER"}, Ability: "ADAPTABILITY", Add: map[shared.Stat]int{shared.StatAttack: 20, shared.StatDefense: 20, shared.StatSpecialAttack: 50, shared.StatSpecialDefense: 10}}},
	{Token: "BLAZIKENITE", Name: "Blazikenite", Description: mysterious("Blaziken"), Rule: Rule{Species: "BLAZIKEN", Types: [2]shared.ElementType{"FIRE", "FIGHTING"}, Ability: "SPEEDBOOST", Add: map[shared.Stat]int{shared.StatAttack: 40, shared.StatDefense: 10, shared.StatSpecialAttack: 20, shared.StatSpecialDefense: 10, shared.StatSpeed: 20}}},
	{Token: "CAMERUPTITE", Name: "Cameruptite", Description: mysterious("Camerupt"), Rule: Rule{Species: "CAMERUPT", Types: [2]shared.ElementType{"FIRE", "GROUND"}, Ability: "SHEERFORCE", Add: map[shared.Stat]int{shared.StatAttack: 20, shared.StatDefense: 30, shared.StatSpecialAttack: 40, shared.StatSpecialDefense: 30, shared.StatSpeed: -20}}},
	{Token: "DIANCITE", Name: "Diancite", Description: mysterious("Diancie"), Rule: Rule{Species: "DIANCIE", Types: [2]shared.ElementType{"ROCK", "FAIRY"}, Ability: "MAGICBOUNCE", Add: map[shared.Stat]int{shared.StatAttack: 60, shared.StatDefense: -40, shared.StatSpecialAttack: 60, shared.StatSpecialDefense: -40, shared.StatSpeed: 60}}},
	{Token: "GALLADITE", Name: "Galladite", Description: mysterious("Gallade"), Rule: Rule{Species: "GALLADE", Types: [2]shared.ElementType{"PSYCHIC", "FIGHTING"}, Ability: "INNERFOCUS", Add: map[shared.Stat]int{shared.StatAttack: 40, shared.StatDefense: 30, shared.StatSpeed: 30}}},
	{Token: "GARCHOMPITE", Name: "Garchompite", Description: mysterious("Garchomp"), Rule: Rule{Species: "GARCHOMP", Types: [2]shared.ElementType{"DRAGON", "GROUND"}, Ability: "SANDFORCE", Add: map[shared.Stat]int{shared.StatAttack: 40, shared.StatDefense: 20, shared.StatSpecialAttack: 40, shared.StatSpecialDefense: 10, shared.StatSpeed: 10}}},
	{Token: "GARDEVOIRITE", Name: "Gardevoirite", Description: mysterious("Gardevoir"), Rule: Rule{Species: "GARDEVOIR", Types: [2]shared.ElementType{"PSYCHIC", "FAIRY"}, Ability: "PIXILATE", Add: map[shared.Stat]int{shared.StatAttack: 20, shared.StatSpecialAttack: 40, shared.StatSpecialDefense: 20, shared.StatSpeed: 20}}},
	{Token: "GLALITITE", Name: "Glalitite", Description: mysterious("Glalie"), Rule: Rule{Species: "GLALIE", Types: [2]shared.ElementType{"ICE", "ICE"}, Ability: "REFRIGERATE", Add: map[shared.Stat]int{shared.StatAttack: 40, shared.StatSpecialAttack: 40, shared.StatSpeed: 20}}},
	{Token: "GYARADOSITE", Name: "Gyaradosite", Description: mysterious("Gyarados"), Rule: Rule{Species: "GYARADOS", Types: [2]shared.ElementType{"WATER", "DARK"}, Ability: "MOLDBREAKER", Add: map[shared.Stat]int{shared.StatAttack: 30, shared.StatDefense: 30, shared.StatSpecialAttack: 10, shared.StatSpecialDefense: 30}}},
	{Token: "HERACRONITE", Name: "Heracronite", Description: mysterious("Heracross"), Rule: Rule{Species: "HERACROSS", Types: [2]shared.ElementType{"BUG", "FIGHTING"}, Ability: "SKILLLINK", Add: map[shared.Stat]int{shared.StatAttack: 60, shared.StatDefense: 40, shared.StatSpecialDefense: 10, shared.StatSpeed: -10}}},
	{Token: "HOUNDOOMINITE", Name: "Houndoominite", Description: mysterious("Houndoom"), Rule: Rule{Species: "HOUNDOOM", Types: [2]shared.ElementType{"DARK", "FIRE"}, Ability: "SOLARPOWER", Add: map[shared.Stat]int{shared.StatDefense: 40, shared.StatSpecialAttack: 30, shared.StatSpecialDefense: 10, shared.StatSpeed: 20}}},
	{Token: "KANGASKHANITE", Name: "Kangaskhanite", Description: mysterious("Kangaskhan"), Rule: Rule{Species: "KANGASKHAN", Types: [2]shared.ElementType{"NORMAL", "NORMAL"}, Ability: "ADAPTABILITY", Add: map[shared.Stat]int{shared.StatAttack: 30, shared.StatDefense: 20, shared.StatSpecialAttack: 20, shared.StatSpecialDefense: 20, shared.StatSpeed: 10}}},
	{Token: "LATIASITE", Name: "Latiasite", Description: mysterious("Latias"), Rule: Rule{Species: "LATIAS", Types: [2]shared.ElementType{"DRAGON", "PSYCHIC"}, Ability: "LEVITATE", Add: map[shared.Stat]int{shared.StatAttack: 20, shared.StatDefense: 30, shared.StatSpecialAttack: 30, shared.StatSpecialDefense: 20}}},
	{Token: "LATIOSITE", Name: "Latiosite", Description: mysterious("Latios"), Rule: Rule{Species: "LATIOS", Types: [2]shared.ElementType{"DRAGON", "PSYCHIC"}, Ability: "LEVITATE", Add: map[shared.Stat]int{shared.StatAttack: 40, shared.StatDefense: 20, shared.StatSpecialAttack: 30, shared.StatSpecialDefense: 10}}},
	{Token: "LUCARIONITE", Name: "Lucarionite", Description: "A mysterious stone. Have Lucario hold it to stop wearing stupid shorts.", Rule: Rule{Species: "LUCARIO", Types: [2]shared.ElementType{"FIGHTING", "STEEL"}, Ability: "ADAPTABILITY", Add: map[shared.Stat]int{shared.StatAttack: 35, shared.StatDefense: 18, shared.StatSpecialAttack: 25, shared.StatSpeed: 22}}},
	{Token: "LUCARIONITE_Z", Name: "Lucarionite Z", Description: "A mysterious stone. Have Lucario hold it to stop wearing stupid shorts.", Rule: Rule{Species: "LUCARIO", Types: [2]shared.ElementType{"FIGHTING", "STEEL"}, Ability: "JUSTIFIED", Add: map[shared.Stat]int{shared.StatAttack: -10, shared.StatSpecialAttack: 49, shared.StatSpeed: 61}}},
	{Token: "MAWILITE", Name: "Mawilite", Description: mysterious("Mawile"), Rule: Rule{Species: "MAWILE", Types: [2]shared.ElementType{"STEEL", "FAIRY"}, Ability: "HUGEPOWER", Add: map[shared.Stat]int{shared.StatAttack: 20, shared.StatDefense: 40, shared.StatSpecialDefense: 40}}},
	{Token: "METAGROSSITE", Name: "Metagrossite", Description: mysterious("Metagross"), Rule: Rule{Species: "METAGROSS", Types: [2]shared.ElementType{"STEEL", "PSYCHIC"}, Ability: "TOUGHCLAWS", Add: map[shared.Stat]int{shared.StatAttack: 10, shared.StatDefense: 20, shared.StatSpecialAttack: 10, shared.StatSpecialDefense: 20, shared.StatSpeed: 40}}},
	{Token: "MEWTWONITE_X", Name: "Mewtwonite X", Description: mysterious("Mewtwo"), Rule: Rule{Species: "MEWTWO", Types: [2]shared.ElementType{"PSYCHIC", "FIGHTING"}, Ability: "STEADFAST", Add: map[shared.Stat]int{shared.StatAttack: 80, shared.StatDefense: 10, shared.StatSpecialDefense: 10}}},
	{Token: "MEWTWONITE_Y", Name: "Mewtwonite Y", Description: mysterious("Mewtwo"), Rule: Rule{Species: "MEWTWO", Types: [2]shared.ElementType{"PSYCHIC", "PSYCHIC"}, Ability: "INSOMNIA", Add: map[shared.Stat]int{shared.StatAttack: 40, shared.StatDefense: -20, shared.StatSpecialAttack: 40, shared.StatSpecialDefense: 30, shared.StatSpeed: 10}}},
	{Token: "PIDGEOTITE", Name: "Pidgeotite", Description: mysterious("Pidgeot"), Rule: Rule{Species: "PIDGEOT", Types: [2]shared.ElementType{"NORMAL", "FLYING"}, Ability: "NOGUARD", Add: map[shared.Stat]int{shared.StatDefense: 5, shared.StatSpecialAttack: 65, shared.StatSpecialDefense: 10, shared.StatSpeed: 20}}},
	{Token: "PINSIRITE", Name: "Pinsirite", Description: mysterious("Pinsir"), Rule: Rule{Species: "PINSIR", Types: [2]shared.ElementType{"BUG", "FLYING"}, Ability: "ADAPTABILITY", Add: map[shared.Stat]int{shared.StatAttack: 30, shared.StatDefense: 20, shared.StatSpecialAttack: 10, shared.StatSpecialDefense: 20, shared.StatSpeed: 20}}},
	{Token: "RAYQUAZATITE", Name: "Rayquazatite", Description: mysterious("Rayquaza"), Rule: Rule{Species: "RAYQUAZA", Types: [2]shared.ElementType{"DRAGON", "FLYING"}, Ability: "AIRLOCK", Add: map[shared.Stat]int{shared.StatAttack: 30, shared.StatDefense: 10, shared.StatSpecialAttack: 30, shared.StatSpecialDefense: 10, shared.StatSpeed: 20}}},
	{Token: "SABLENITE", Name: "Sablenite", Description: mysterious("Sableye"), Rule: Rule{Species: "SABLEYE", Types: [2]shared.ElementType{"DARK", "GHOST"}, Ability: "MAGICBOUNCE", Add: map[shared.Stat]int{shared.StatAttack: 10, shared.StatDefense: 50, shared.StatSpecialAttack: 20, shared.StatSpecialDefense: 50, shared.StatSpeed: -30}}},
	{Token: "SALAMENCITE", Name: "Salamencite", Description: mysterious("Salamence"), Rule: Rule{Species: "SALAMENCE", Types: [2]shared.ElementType{"DRAGON", "FLYING"}, Ability: "MOXIE", Add: map[shared.Stat]int{shared.StatAttack: 10, shared.StatDefense: 50, shared.StatSpecialAttack: 10, shared.StatSpecialDefense: 10, shared.StatSpeed: 20}}},
	{Token: "SCEPTILITE", Name: "Sceptilite", Description: mysterious("Sceptile"), Rule: Rule{Species: "SCEPTILE", Types: [2]shared.ElementType{"GRASS", "DRAGON"}, Ability: "LIGHTNINGROD", Add: map[shared.Stat]int{shared.StatAttack: 25, shared.StatDefense: 10, shared.StatSpecialAttack: 40, shared.StatSpeed: 25}}},
	{Token: "SCIZORITE", Name: "Scizorite", Description: mysterious("Scizor"), Rule: Rule{Species: "SCIZOR", Types: [2]shared.ElementType{"BUG", "STEEL"}, Ability: "TECHNICIAN", Add: map[shared.Stat]int{shared.StatAttack: 20, shared.StatDefense: 40, shared.StatSpecialAttack: 10, shared.StatSpecialDefense: 20, shared.StatSpeed: 10}}},
	{Token: "SHARPEDONITE", Name: "Sharpedonite", Description: mysterious("Sharpedo"), Rule: Rule{Species: "SHARPEDO", Types: [2]shared.ElementType{"WATER", "DARK"}, Ability: "STRONGJAW", Add: map[shared.Stat]int{shared.StatAttack: 20, shared.StatDefense: 30, shared.StatSpecialAttack: 15, shared.StatSpecialDefense: 25, shared.StatSpeed: 10}}},
	{Token: "SLOWBRONITE", Name: "Slowbronite", Description: mysterious("Slowbro"), Rule: Rule{Species: "SLOWBRO", Types: [2]shared.ElementType{"WATER", "PSYCHIC"}, Ability: "SHELLARMOR", Add: map[shared.Stat]int{shared.StatDefense: 70, shared.StatSpecialAttack: 30}}},
	{Token: "STEELIXITE", Name: "Steelixite", Description: mysterious("Steelix"), Rule: Rule{Species: "STEELIX", Types: [2]shared.ElementType{"STEEL", "GROUND"}, Ability: "SANDFORCE", Add: map[shared.Stat]int{shared.StatAttack: 40, shared.StatDefense: 30, shared.StatSpecialDefense: 30}}},
	{Token: "SWAMPERTITE", Name: "Swampertite", Description: mysterious("Swampert"), Rule: Rule{Species: "SWAMPERT", Types: [2]shared.ElementType{"WATER", "GROUND"}, Ability: "SWIFTSWIM", Add: map[shared.Stat]int{shared.StatAttack: 40, shared.StatDefense: 20, shared.StatSpecialAttack: 10, shared.StatSpecialDefense: 20, shared.StatSpeed: 10}}},
	{Token: "TYRANITARITE", Name: "Tyranitarite", Description: mysterious("Tyranitar"), Rule: Rule{Species: "TYRANITAR", Types: [2]shared.ElementType{"ROCK", "DARK"}, Ability: "SANDSTREAM", Add: map[shared.Stat]int{shared.StatAttack: 30, shared.StatDefense: 40, shared.StatSpecialDefense: 20, shared.StatSpeed: 10}}},
	{Token: "VENUSAURITE", Name: "Venusaurite", Description: mysterious("Venusaur"), Rule: Rule{Species: "VENUSAUR", Types: [2]shared.ElementType{"GRASS", "POISON"}, Ability: "THICKFAT", Add: map[shared.Stat]int{shared.StatAttack: 18, shared.StatDefense: 40, shared.StatSpecialAttack: 22, shared.StatSpecialDefense: 20}}},
	{Token: "CLEFABLITE", Name: "Clefablite", Description: mysterious("Clefable"), Rule: Rule{Species: "CLEFABLE", Types: [2]shared.ElementType{"FAIRY", "FLYING"}, Ability: "UNAWARE", Add: map[shared.Stat]int{shared.StatAttack: 10, shared.StatDefense: 20, shared.StatSpecialAttack: 40, shared.StatSpecialDefense: 20, shared.StatSpeed: 10}}},
	{Token: "VICTREEBELITE", Name: "Victreebelite", Description: mysterious("Victreebel"), Rule: Rule{Species: "VICTREEBEL", Types: [2]shared.ElementType{"GRASS", "POISON"}, Ability: "GLUTTONY", Add: map[shared.Stat]int{shared.StatAttack: 20, shared.StatDefense: 20, shared.StatSpecialAttack: 35, shared.StatSpecialDefense: 25}}},
	{Token: "STARMINITE", Name: "Starminite", Description: mysterious("Starmie"), Rule: Rule{Species: "STARMIE", Types: [2]shared.ElementType{"WATER", "PSYCHIC"}, Ability: "ANALYTIC", Add: map[shared.Stat]int{shared.StatAttack: 65, shared.StatDefense: 20, shared.StatSpecialAttack: 30, shared.StatSpecialDefense: 20, shared.StatSpeed: 5}}},
	{Token: "DRAGONINITE", Name: "Dragoninite", Description: mysterious("Dragonite"), Rule: Rule{Species: "DRAGONITE", Types: [2]shared.ElementType{"DRAGON", "FLYING"}, Ability: "MULTISCALE", Add: map[shared.Stat]int{shared.StatAttack: -10, shared.StatDefense: 20, shared.StatSpecialAttack: 45, shared.StatSpecialDefense: 25, shared.StatSpeed: 20}}},
	{Token: "MEGANIUMITE", Name: "Meganiumite", Description: mysterious("Meganium"), Rule: Rule{Species: "MEGANIUM", Types: [2]shared.ElementType{"GRASS", "FAIRY"}, Ability: "LEAFGUARD", Add: map[shared.Stat]int{shared.StatAttack: 10, shared.StatDefense: 15, shared.StatSpecialAttack: 60, shared.StatSpecialDefense: 15}}},
	{Token: "FERALIGITE", Name: "Feraligite", Description: mysterious("Feraligatr"), Rule: Rule{Species: "FERALIGATR", Types: [2]shared.ElementType{"WATER", "DRAGON"}, Ability: "SHEERFORCE", Add: map[shared.Stat]int{shared.StatAttack: 55, shared.StatDefense: 25, shared.StatSpecialAttack: 10, shared.StatSpecialDefense: 10}}},
	{Token: "SKARMORITE", Name: "Skarmorite", Description: mysterious("Skarmory"), Rule: Rule{Species: "SKARMORY", Types: [2]shared.ElementType{"STEEL", "FLYING"}, Ability: "WEAKARMOR", Add: map[shared.Stat]int{shared.StatAttack: 60, shared.StatDefense: -30, shared.StatSpecialDefense: 30, shared.StatSpeed: 40}}},
	{Token: "FROSLASSITE", Name: "Froslassite", Description: mysterious("Froslass"), Rule: Rule{Species: "FROSLASS", Types: [2]shared.ElementType{"ICE", "GHOST"}, Ability: "CURSEDBODY", Add: map[shared.Stat]int{shared.StatSpecialAttack: 60, shared.StatSpecialDefense: 30, shared.StatSpeed: 10}}},
	{Token: "SCOLIPITE", Name: "Scolipite", Description: mysterious("Scolipede"), Rule: Rule{Species: "SCOLIPEDE", Types: [2]shared.ElementType{"BUG", "POISON"}, Ability: "SPEEDBOOST", Add: map[shared.Stat]int{shared.StatAttack: 40, shared.StatDefense: 60, shared.StatSpecialAttack: 20, shared.StatSpecialDefense: 30, shared.StatSpeed: -50}}},
	{Token: "SCRAFTINITE", Name: "Scraftinite", Description: mysterious("Scrafty"), Rule: Rule{Species: "SCRAFTY", Types: [2]shared.ElementType{"DARK", "FIGHTING"}, Ability: "INTIMIDATE", Add: map[shared.Stat]int{shared.StatAttack: 40, shared.StatDefense: 20, shared.StatSpecialAttack: 10, shared.StatSpecialDefense: 20, shared.StatSpeed: 10}}},
	{Token: "CHANDELURITE", Name: "Chandelurite", Description: mysterious("Chandelure"), Rule: Rule{Species: "CHANDELURE", Types: [2]shared.ElementType{"GHOST", "FIRE"}, Ability: "INFILTRATOR", Add: map[shared.Stat]int{shared.StatAttack: 20, shared.StatDefense: 20, shared.StatSpecialAttack: 30, shared.StatSpecialDefense: 20, shared.StatSpeed: 10}}},
	{Token: "CHESTNAUGHTITE", Name: "Chestnaughtite", Description: mysterious("Chestnaught"), Rule: Rule{Species: "CHESTNAUGHT", Types: [2]shared.ElementType{"GRASS", "FIGHTING"}, Ability: "BULLETPROOF", Add: map[shared.Stat]int{shared.StatAttack: 30, shared.StatDefense: 50, shared.StatSpecialDefense: 40, shared.StatSpeed: -20}}},
	{Token: "DELPHOXITE", Name: "Delphoxite", Description: mysterious("Delphox"), Rule: Rule{Species: "DELPHOX", Types: [2]shared.ElementType{"FIRE", "PSYCHIC"}, Ability: "MAGICIAN", Add: map[shared.Stat]int{shared.StatSpecialAttack: 45, shared.StatSpecialDefense: 25, shared.StatSpeed: 30}}},
	{Token: "GRENINJITE", Name: "Greninjite", Description: mysterious("Greninja"), Rule: Rule{Species: "GRENINJA", Types: [2]shared.ElementType{"WATER", "DARK"}, Ability: "PROTEAN", Add: map[shared.Stat]int{shared.StatAttack: 30, shared.StatDefense: 10, shared.StatSpecialAttack: 30, shared.StatSpecialDefense: 10, shared.StatSpeed: 20}}},
	{Token: "DRAGALGITE", Name: "Dragalgite", Description: mysterious("Dragalge"), Rule: Rule{Species: "DRAGALGE", Types: [2]shared.ElementType{"POISON", "DRAGON"}, Ability: "ADAPTABILITY", Add: map[shared.Stat]int{shared.StatAttack: 10, shared.StatDefense: 15, shared.StatSpecialAttack: 35, shared.StatSpecialDefense: 40}}},
	{Token: "HAWLUCHANITE", Name: "Hawluchanite", Description: mysterious("Hawlucha"), Rule: Rule{Species: "HAWLUCHA", Types: [2]shared.ElementType{"FIGHTING", "FLYING"}, Ability: "MOLDBREAKER", Add: map[shared.Stat]int{shared.StatAttack: 45, shared.StatDefense: 25, shared.StatSpecialDefense: 30}}},
	{Token: "RAICHUNITE_X", Name: "Raichunite X", Description: mysterious("Raichu"), Rule: Rule{Species: "RAICHU", Types: [2]shared.ElementType{"ELECTRIC", "ELECTRIC"}, Ability: "LIGHTNINGROD", Add: map[shared.Stat]int{shared.StatAttack: 45, shared.StatDefense: 40, shared.StatSpecialDefense: 15}}},
	{Token: "RAICHUNITE_Y", Name: "Raichunite Y", Description: mysterious("Raichu"), Rule: Rule{Species: "RAICHU", Types: [2]shared.ElementType{"ELECTRIC", "ELECTRIC"}, Ability: "LIGHTNINGROD", Add: map[shared.Stat]int{shared.StatAttack: 10, shared.StatSpecialAttack: 70, shared.StatSpeed: 20}}},
	{Token: "ABSOLITE_Z", Name: "Absolite Z", Description: mysterious("Absol"), Rule: Rule{Species: "ABSOL", Types: [2]shared.ElementType{"DARK", "GHOST"}, Ability: "JUSTIFIED", Add: map[shared.Stat]int{shared.StatAttack: 24, shared.StatSpeed: 76}}},
	{Token: "GARCHOMPITE_Z", Name: "Garchompite Z", Description: mysterious("Garchomp"), Rule: Rule{Species: "GARCHOMP", Types: [2]shared.ElementType{"DRAGON", "DRAGON"}, Ability: "ROUGHSKIN", Add: map[shared.Stat]int{shared.StatDefense: -10, shared.StatSpecialAttack: 61, shared.StatSpeed: 49}}},
	{Token: "DARKRANITE", Name: "Darkranite", Description: mysterious("Darkrai"), Rule: Rule{Species: "DARKRAI", Types: [2]shared.ElementType{"DARK", "DARK"}, Ability: "BADDREAMS", Add: map[shared.Stat]int{shared.StatAttack: 30, shared.StatDefense: 40, shared.StatSpecialAttack: 30, shared.StatSpecialDefense: 40, shared.StatSpeed: -40}}},
	{Token: "GOLURKITE", Name: "Golurkite", Description: mysterious("Golurk"), Rule: Rule{Species: "GOLURK", Types: [2]shared.ElementType{"GROUND", "GHOST"}, Ability: "NOGUARD", Add: map[shared.Stat]int{shared.StatAttack: 35, shared.StatDefense: 25, shared.StatSpecialAttack: 15, shared.StatSpecialDefense: 25}}},
	{Token: "GOLISOPITE", Name: "Golisopite", Description: mysterious("Golisopod"), Rule: Rule{Species: "GOLISOPOD", Types: [2]shared.ElementType{"BUG", "STEEL"}, Ability: "EMERGENCYEXIT", Add: map[shared.Stat]int{shared.StatAttack: 25, shared.StatDefense: 35, shared.StatSpecialAttack: 10, shared.StatSpecialDefense: 30}}},
}

// builtinSpecies maps a species to its stones. The first stone is the one a self-fusion
// holds; the rest are deposited into the bag.
var builtinSpecies = map[string][]string{
	"CHARIZARD":   {"CHARIZARDITE_X", "CHARIZARDITE_Y"},
	"GENGAR":      {"GENGARITE"},
	"LOPUNNY":     {"LOPUNNITE"},
	"ABSOL":       {"ABSOLITE", "ABSOLITE_Z"},
	"AERODACTYL":  {"AERODACTYLITE"},
	"AGGRON":      {"AGGRONITE"},
	"ALAKAZAM":    {"ALAKAZITE"},
	"ALTARIA":     {"ALTARIANITE"},
	"AMPHAROS":    {"AMPHAROSITE"},
	"BANETTE":     {"BANETTITE"},
	"BEEDRILL":    {"BEEDRILLITE"},
	"BLASTOISE":   {"BLASTOISINITE"},
	"BLAZIKEN":    {"BLAZIKENITE"},
	"CAMERUPT":    {"CAMERUPTITE"},
	"DIANCIE":     {"DIANCITE"},
	"GALLADE":     {"GALLADITE"},
	"GARCHOMP":    {"GARCHOMPITE", "GARCHOMPITE_Z"},
	"GARDEVOIR":   {"GARDEVOIRITE"},
	"GLALIE":      {"GLALITITE"},
	"GYARADOS":    {"GYARADOSITE"},
	"HERACROSS":   {"HERACRONITE"},
	"HOUNDOOM":    {"HOUNDOOMINITE"},
	"KANGASKHAN":  {"KANGASKHANITE"},
	"LATIAS":      {"LATIASITE"},
	"LATIOS":      {"LATIOSITE"},
	"LUCARIO":     {"LUCARIONITE", "LUCARIONITE_Z"},
	"MAWILE":      {"MAWILITE"},
	"METAGROSS":   {"METAGROSSITE"},
	"MEWTWO":      {"MEWTWONITE_Y", "MEWTWONITE_X"},
	"PIDGEOT":     {"PIDGEOTITE"},
	"PINSIR":      {"PINSIRITE"},
	"RAYQUAZA":    {"RAYQUAZATITE"},
	"SABLEYE":     {"SABLENITE"},
	"SALAMENCE":   {"SALAMENCITE"},
	"SCEPTILE":    {"SCEPTILITE"},
	"SCIZOR":      {"SCIZORITE"},
	"SHARPEDO":    {"SHARPEDONITE"},
	"SLOWBRO":     {"SLOWBRONITE"},
	"STEELIX":     {"STEELIXITE"},
	"SWAMPERT":    {"SWAMPERTITE"},
	"TYRANITAR":   {"TYRANITARITE"},
	"VENUSAUR":    {"VENUSAURITE"},
	"CLEFABLE":    {"CLEFABLITE"},
	"VICTREEBEL":  {"VICTREEBELITE"},
	"STARMIE":     {"STARMINITE"},
	"DRAGONITE":   {"DRAGONINITE"},
	"MEGANIUM":    {"MEGANIUMITE"},
	"FERALIGATR":  {"FERALIGITE"},
	"SKARMORY":    {"SKARMORITE"},
	"FROSLASS":    {"FROSLASSITE"},
	"SCOLIPEDE":   {"SCOLIPITE"},
	"SCRAFTY":     {"SCRAFTINITE"},
	"CHANDELURE":  {"CHANDELURITE"},
	"CHESTNAUGHT": {"CHESTNAUGHTITE"},
	"DELPHOX":     {"DELPHOXITE"},
	"GRENINJA":    {"GRENINJITE"},
	"DRAGALGE":    {"DRAGALGITE"},
	"HAWLUCHA":    {"HAWLUCHANITE"},
	"RAICHU":      {"RAICHUNITE_Y", "RAICHUNITE_X"},
	"DARKRAI":     {"DARKRANITE"},
	"GOLURK":      {"GOLURKITE"},
	"GOLISOPOD":   {"GOLISOPITE"},
}
