package commands

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
)

const (
	MaxPopulateCount = 100
	MaxFloor         = 20
	MaxRoomsPerFloor = 50
)

// Guest sample kinds accepted by PopulateGuests.
const (
	GuestSampleRandom   = "random"
	GuestSamplePremium  = "premium"
	GuestSampleBusiness = "business"
	GuestSampleLeisure  = "leisure"
	GuestSampleAll      = "all"
)

var (
	sampleFirstNames = []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
		"William", "Elizabeth", "David", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
		"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Nancy", "Daniel", "Lisa",
		"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
		"Steven", "Kimberly", "Paul", "Emily", "Andrew", "Donna", "Joshua", "Michelle",
		"Kenneth", "Dorothy", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
		"Edward", "Deborah", "Ronald", "Stephanie", "Timothy", "Rebecca", "Jason", "Sharon",
		"Jeffrey", "Laura", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary", "Amy",
		"Frank", "Angela", "Nicholas", "Helen", "Eric", "Brenda", "Jonathan", "Emma",
		"Oliver", "Sophia", "Alexander", "Isabella", "Ethan", "Charlotte", "Lucas", "Amelia",
	}

	sampleLastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
		"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
		"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
		"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
		"Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell",
		"Mitchell", "Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz",
		"Parker", "Cruz", "Edwards", "Collins", "Reyes", "Stewart", "Morris", "Morales",
		"Murphy", "Cook", "Rogers", "Gutierrez", "Ortiz", "Morgan", "Cooper", "Peterson",
	}

	sampleEmailDomains = []string{
		"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "icloud.com",
		"mail.com", "protonmail.com", "aol.com", "live.com", "yandex.com",
		"fastmail.com", "zoho.com", "gmx.com", "tutanota.com", "mail.ru",
	}

	sampleCountryCodes = []string{
		"1", "44", "33", "49", "39", "34", "81", "86", "91", "61", "55", "52", "31", "46", "47",
	}
)

var (
	premiumGuests = []GuestInput{
		{Name: "Alexander Hamilton", Email: "a.hamilton@executive.com", Phone: "+1-555-100-0001"},
		{Name: "Victoria Sterling", Email: "v.sterling@corporate.com", Phone: "+44-20-7100-0002"},
		{Name: "Maximilian Berg", Email: "m.berg@business.de", Phone: "+49-30-8100-0003"},
		{Name: "Isabella Rossi", Email: "i.rossi@luxury.it", Phone: "+39-06-9100-0004"},
		{Name: "Chen Wei", Email: "chen.wei@enterprise.cn", Phone: "+86-10-8100-0005"},
		{Name: "Sophie Dubois", Email: "s.dubois@premier.fr", Phone: "+33-1-7100-0006"},
		{Name: "Raj Patel", Email: "r.patel@tech.in", Phone: "+91-22-9100-0007"},
		{Name: "Maria Silva", Email: "m.silva@business.br", Phone: "+55-11-9100-0008"},
		{Name: "James Mitchell", Email: "j.mitchell@vip.au", Phone: "+61-2-9100-0009"},
		{Name: "Elena Volkov", Email: "e.volkov@premium.ru", Phone: "+7-495-100-0010"},
	}

	businessGuests = []GuestInput{
		{Name: "Robert Thompson", Email: "r.thompson@techcorp.com", Phone: "+1-415-555-2001"},
		{Name: "Sarah Johnson", Email: "s.johnson@globalbank.com", Phone: "+1-212-555-2002"},
		{Name: "Michael Chen", Email: "m.chen@consulting.com", Phone: "+1-650-555-2003"},
		{Name: "Emma Williams", Email: "e.williams@lawfirm.com", Phone: "+1-312-555-2004"},
		{Name: "David Kumar", Email: "d.kumar@startup.io", Phone: "+1-408-555-2005"},
		{Name: "Lisa Anderson", Email: "l.anderson@media.com", Phone: "+1-310-555-2006"},
		{Name: "Thomas Mueller", Email: "t.mueller@automotive.de", Phone: "+49-89-555-2007"},
		{Name: "Anna Petrov", Email: "a.petrov@energy.com", Phone: "+7-495-555-2008"},
		{Name: "Carlos Rodriguez", Email: "c.rodriguez@retail.es", Phone: "+34-91-555-2009"},
		{Name: "Yuki Tanaka", Email: "y.tanaka@tech.jp", Phone: "+81-3-555-2010"},
	}

	leisureGuests = []GuestInput{
		{Name: "Jennifer Brown", Email: "jenny.brown@gmail.com", Phone: "+1-555-333-4001"},
		{Name: "Mark Wilson", Email: "mark.wilson2024@yahoo.com", Phone: "+1-555-333-4002"},
		{Name: "Amanda Taylor", Email: "amanda.t@hotmail.com", Phone: "+1-555-333-4003"},
		{Name: "Christopher Lee", Email: "chris.lee88@gmail.com", Phone: "+1-555-333-4004"},
		{Name: "Jessica Martinez", Email: "jess.martinez@outlook.com", Phone: "+1-555-333-4005"},
		{Name: "Daniel White", Email: "daniel.white@icloud.com", Phone: "+1-555-333-4006"},
		{Name: "Michelle Garcia", Email: "michelle.g@gmail.com", Phone: "+1-555-333-4007"},
		{Name: "Ryan Davis", Email: "ryan.davis2024@mail.com", Phone: "+1-555-333-4008"},
		{Name: "Ashley Robinson", Email: "ashley.r@protonmail.com", Phone: "+1-555-333-4009"},
		{Name: "Kevin Clark", Email: "kevin.clark@fastmail.com", Phone: "+1-555-333-4010"},
	}
)

// GenerateGuests returns count random guests with emails unique within the batch.
func GenerateGuests(r *rand.Rand, count int) []GuestInput {
	out := make([]GuestInput, 0, count)
	used := make(map[string]struct{}, count)
	for range count {
		first := pick(r, sampleFirstNames)
		last := pick(r, sampleLastNames)

		var email string
		for {
			email = fmt.Sprintf("%s.%s%d@%s",
				strings.ToLower(first), strings.ToLower(last), between(r, 1, 999), pick(r, sampleEmailDomains))
			if _, dup := used[email]; !dup {
				break
			}
		}
		used[email] = struct{}{}

		phone := fmt.Sprintf("+%s-%d-%d-%d",
			pick(r, sampleCountryCodes), between(r, 100, 999), between(r, 100, 999), between(r, 1000, 9999))

		out = append(out, GuestInput{Name: first + " " + last, Email: email, Phone: phone})
	}
	return out
}

// CuratedGuests returns the fixed guest list for kind, or false for unknown kinds.
func CuratedGuests(kind string) ([]GuestInput, bool) {
	switch kind {
	case GuestSamplePremium:
		return slices.Clone(premiumGuests), true
	case GuestSampleBusiness:
		return slices.Clone(businessGuests), true
	case GuestSampleLeisure:
		return slices.Clone(leisureGuests), true
	case GuestSampleAll:
		all := make([]GuestInput, 0, len(premiumGuests)+len(businessGuests)+len(leisureGuests))
		all = append(all, premiumGuests...)
		all = append(all, businessGuests...)
		all = append(all, leisureGuests...)
		return all, true
	}
	return nil, false
}

const (
	RoomTypeEconomy           = "Economy"
	RoomTypeStandard          = "Standard"
	RoomTypeSingle            = "Single"
	RoomTypeDouble            = "Double"
	RoomTypeTwin              = "Twin"
	RoomTypeDeluxe            = "Deluxe"
	RoomTypeStudio            = "Studio"
	RoomTypeFamily            = "Family"
	RoomTypeJuniorSuite       = "Junior Suite"
	RoomTypeSuite             = "Suite"
	RoomTypeHoneymoon         = "Honeymoon Suite"
	RoomTypeExecutiveSuite    = "Executive Suite"
	RoomTypePenthouse         = "Penthouse"
	RoomTypePresidentialSuite = "Presidential Suite"
	RoomTypeAccessible        = "Accessible Room"
)

// base nightly rates in whole dollars
var roomBasePrices = map[string]int64{
	RoomTypeEconomy:           75,
	RoomTypeStandard:          120,
	RoomTypeSingle:            100,
	RoomTypeDouble:            150,
	RoomTypeTwin:              140,
	RoomTypeDeluxe:            200,
	RoomTypeStudio:            180,
	RoomTypeFamily:            250,
	RoomTypeJuniorSuite:       300,
	RoomTypeSuite:             350,
	RoomTypeHoneymoon:         400,
	RoomTypeExecutiveSuite:    500,
	RoomTypePenthouse:         800,
	RoomTypePresidentialSuite: 1200,
	RoomTypeAccessible:        130,
}

var roomDescriptions = map[string]string{
	RoomTypeEconomy:           "Budget-friendly room with essential amenities. Perfect for short stays.",
	RoomTypeStandard:          "Comfortable room with modern amenities, work desk, and city view.",
	RoomTypeSingle:            "Cozy room with a single bed, ideal for solo travelers.",
	RoomTypeDouble:            "Spacious room with a queen-size bed, perfect for couples.",
	RoomTypeTwin:              "Room with two single beds, great for friends or colleagues.",
	RoomTypeDeluxe:            "Luxurious room with premium amenities, king-size bed, and stunning views.",
	RoomTypeStudio:            "Open-plan room with living area, kitchenette, and workspace.",
	RoomTypeFamily:            "Large room with multiple beds, perfect for families with children.",
	RoomTypeJuniorSuite:       "Elegant suite with separate seating area and premium amenities.",
	RoomTypeSuite:             "Spacious suite with separate living room, bedroom, and luxury bathroom.",
	RoomTypeHoneymoon:         "Romantic suite with champagne, jacuzzi, and breathtaking views.",
	RoomTypeExecutiveSuite:    "Premium suite with office space, meeting area, and executive lounge access.",
	RoomTypePenthouse:         "Top-floor luxury suite with panoramic views, terrace, and butler service.",
	RoomTypePresidentialSuite: "Ultimate luxury with multiple bedrooms, dining room, kitchen, and private elevator.",
	RoomTypeAccessible:        "Fully accessible room with wider doorways, grab bars, and roll-in shower.",
}

func floorRoomTypes(floor int) []string {
	switch floor {
	case 1:
		return []string{RoomTypeEconomy, RoomTypeStandard, RoomTypeAccessible}
	case 2:
		return []string{RoomTypeStandard, RoomTypeSingle, RoomTypeTwin}
	case 3:
		return []string{RoomTypeDouble, RoomTypeTwin, RoomTypeStandard}
	case 4:
		return []string{RoomTypeDeluxe, RoomTypeDouble, RoomTypeStudio}
	case 5:
		return []string{RoomTypeDeluxe, RoomTypeFamily, RoomTypeStudio}
	case 6:
		return []string{RoomTypeJuniorSuite, RoomTypeDeluxe, RoomTypeFamily}
	case 7:
		return []string{RoomTypeSuite, RoomTypeJuniorSuite, RoomTypeHoneymoon}
	case 8:
		return []string{RoomTypeExecutiveSuite, RoomTypeSuite}
	case 9:
		return []string{RoomTypeExecutiveSuite, RoomTypePenthouse}
	case 10:
		return []string{RoomTypePresidentialSuite, RoomTypePenthouse}
	default:
		return []string{RoomTypeStandard, RoomTypeDouble, RoomTypeDeluxe}
	}
}

// GenerateFloorRooms lays out rooms {floor}01..{floor}NN. Corner rooms cost 10% more.
func GenerateFloorRooms(floor, perFloor int) []RoomInput {
	types := floorRoomTypes(floor)
	out := make([]RoomInput, 0, perFloor)
	for i := 1; i <= perFloor; i++ {
		roomType := types[(i-1)%len(types)]
		cents := roomBasePrices[roomType] * 100
		if i == 1 || i == perFloor {
			cents = int64(math.Round(float64(cents) * 1.1))
		}
		out = append(out, RoomInput{
			RoomNumber:         fmt.Sprintf("%d%02d", floor, i),
			RoomType:           roomType,
			PricePerNightCents: cents,
			Description:        roomDescriptions[roomType],
			IsAvailable:        true,
		})
	}
	return out
}

// seeded returns a generator for seed, or one seeded from fallback.
func seeded(seed *uint64, fallback int64) *rand.Rand {
	s := uint64(fallback)
	if seed != nil {
		s = *seed
	}
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

func pick[T any](r *rand.Rand, xs []T) T {
	return xs[r.IntN(len(xs))]
}

// between returns an int in [lo, hi).
func between(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo)
}
