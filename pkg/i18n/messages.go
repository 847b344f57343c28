package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys double as the English text.
const (
	MsgDashboard        = "Dashboard"
	MsgAccessDenied     = "Access Denied"
	MsgLoginToContinue  = "Login to Continue"
	MsgListings         = "Listings"
	MsgMyListings       = "My Listings"
	MsgMyEquipment      = "My Equipment"
	MsgMyBookings       = "My Booking Requests"
	MsgIncomingBookings = "Incoming Bookings"
	MsgExpertProfile    = "Expert Profile"
	MsgBookings         = "Bookings"
	MsgConsultations    = "Consultations"
	MsgPending          = "Pending"
	MsgNothingListed    = "You haven’t listed anything yet."
	MsgExploreMarket    = "Explore Market"
	MsgSellCrop         = "Sell Crop"
	MsgRegisterShop     = "Register Shop"
	MsgRegisterExpert   = "Register as Expert"
	MsgFindExperts      = "Find Experts"
	MsgConfirmDelete    = "Are you sure you want to delete this?"
	MsgSafetyTip        = "Never share your bank OTP with anyone pretending to be a buyer."
	MsgOnlyFarmersBook  = "Only registered Farmers can book appointments."
	MsgSelectService    = "Please select a service type first"
	MsgBookingSent      = "Booking request sent for %s!"
	MsgTicketSent       = "Message sent! We will contact you soon."
	MsgTipRain          = "Rain detected. Delay pesticide spraying and check drainage in banana and tuber plots."
	MsgTipHeat          = "High heat! Ensure mulching for young saplings and irrigate during early morning or late evening."
	MsgTipFavorable     = "Favorable conditions. Good time for organic manuring and weeding in coconut groves."
	MsgFixedLocation    = "Showing weather for %s (location access unavailable)"
	MsgStatusPending    = "pending"
	MsgStatusApproved   = "approved"
	MsgStatusRejected   = "rejected"
	MsgStatusCompleted  = "completed"
	MsgRoleFarmer       = "Farmer"
	MsgRoleVendor       = "Vendor"
	MsgRoleExpert       = "Agricultural Expert"
	MsgFarmVisit        = "Farm Visit"
	MsgVideoCall        = "Video Call"
	MsgVoiceCall        = "Voice Call"
)

var malayalam = map[string]string{
	MsgDashboard:        "ഡാഷ്ബോർഡ്",
	MsgAccessDenied:     "പ്രവേശനം നിഷേധിച്ചു",
	MsgLoginToContinue:  "തുടരാൻ ലോഗിൻ ചെയ്യുക",
	MsgListings:         "ലിസ്റ്റിംഗുകൾ",
	MsgMyListings:       "എന്റെ ലിസ്റ്റിംഗുകൾ",
	MsgMyEquipment:      "എന്റെ ഉപകരണങ്ങൾ",
	MsgMyBookings:       "എന്റെ ബുക്കിംഗുകൾ",
	MsgIncomingBookings: "ലഭിച്ച ബുക്കിംഗുകൾ",
	MsgExpertProfile:    "വിദഗ്ധ പ്രൊഫൈൽ",
	MsgBookings:         "ബുക്കിംഗുകൾ",
	MsgConsultations:    "കൺസൾട്ടേഷൻ",
	MsgPending:          "തീർപ്പാക്കാത്തവ",
	MsgNothingListed:    "നിങ്ങൾ ഇതുവരെ ഒന്നും ചേർത്തിട്ടില്ല.",
	MsgExploreMarket:    "മാർക്കറ്റ് കാണുക",
	MsgSellCrop:         "വിളകൾ വിൽക്കുക",
	MsgRegisterShop:     "കട ചേർക്കുക",
	MsgRegisterExpert:   "വിദഗ്ധനായി ചേരുക",
	MsgFindExperts:      "വിദഗ്ധരെ കണ്ടെത്തുക",
	MsgConfirmDelete:    "ഇത് നീക്കം ചെയ്യുമെന്ന് ഉറപ്പാണോ?",
	MsgSafetyTip:        "വാങ്ങുന്നവർ എന്ന വ്യാജേന വരുന്നവർക്ക് ബാങ്ക് ഒടിപി നൽകരുത്.",
	MsgOnlyFarmersBook:  "രജിസ്റ്റർ ചെയ്ത കർഷകർക്ക് മാത്രമേ അപ്പോയിന്റ്മെന്റ് ബുക്ക് ചെയ്യാൻ കഴിയൂ.",
	MsgSelectService:    "ദയവായി ഒരു സേവനം തിരഞ്ഞെടുക്കുക",
	MsgBookingSent:      "ബുക്കിംഗ് അഭ്യർത്ഥന അയച്ചു! (%s)",
	MsgTicketSent:       "സന്ദേശം അയച്ചു! ഞങ്ങൾ ഉടൻ നിങ്ങളെ ബന്ധപ്പെടും.",
	MsgTipRain:          "മഴയ്ക്ക് സാധ്യത. കീടനാശിനി പ്രയോഗം ഒഴിവാക്കുക, തോട്ടങ്ങളിൽ വെള്ളക്കെട്ട് ഇല്ലെന്ന് ഉറപ്പാക്കുക.",
	MsgTipHeat:          "കഠിനമായ ചൂട്! തൈകൾക്ക് പുതയിടുക, നനയ്ക്കുന്നത് അതിരാവിലെയോ വൈകുന്നേരമോ ആക്കുക.",
	MsgTipFavorable:     "അനുകൂല കാലാവസ്ഥ. തെങ്ങിൻ തോട്ടങ്ങളിൽ വളമിടാനും കള നീക്കം ചെയ്യാനും അനുയോജ്യമായ സമയം.",
	MsgFixedLocation:    "%s ലെ കാലാവസ്ഥ (സ്ഥാന വിവരം ലഭ്യമല്ല)",
	MsgStatusPending:    "തീർപ്പാക്കാനുണ്ട്",
	MsgStatusApproved:   "അംഗീകരിച്ചു",
	MsgStatusRejected:   "നിരസിച്ചു",
	MsgStatusCompleted:  "പൂർത്തിയായി",
	MsgRoleFarmer:       "കർഷകൻ",
	MsgRoleVendor:       "വ്യാപാരി",
	MsgRoleExpert:       "കാർഷിക വിദഗ്ധൻ",
	MsgFarmVisit:        "ഫാം സന്ദർശനം",
	MsgVideoCall:        "വീഡിയോ കോൾ",
	MsgVoiceCall:        "വോയ്സ് കോൾ",
}

func init() {
	for key, text := range malayalam {
		if err := message.SetString(language.Malayalam, key, text); err != nil {
			panic(err)
		}
		if err := message.SetString(language.English, key, key); err != nil {
			panic(err)
		}
	}
}
