package booking

// User-facing messages. They are shown verbatim in the booking form.
const (
	msgMissingParams      = "Paramètres manquants"
	msgInvalidBooking     = "Données de réservation invalides"
	msgInvalidTime        = "Format d'heure invalide (HH:MM attendu)"
	msgInvalidDate        = "Format de date invalide (AAAA-MM-JJ attendu)"
	msgInvalidEmail       = "Adresse e-mail invalide"
	msgInvalidType        = "Type de réservation invalide"
	msgPastDate           = "La date de réservation est passée"
	msgInvertedInterval   = "L'heure de départ doit être après l'heure d'arrivée"
	msgClosedSunday       = "Le coworking est fermé le dimanche."
	msgWeekdayHours       = "Horaires d'ouverture lundi-vendredi : 9h00 - 19h00."
	msgSaturdayHours      = "Horaires d'ouverture samedi : 10h00 - 18h00."
	msgPriceMismatch      = "Le tarif indiqué ne correspond pas au tarif en vigueur"
	msgRoomAvailable      = "Salle disponible"
	msgRoomTaken          = "Salle de réunion déjà réservée sur ce créneau"
	msgCapacityReached    = "Capacité maximale atteinte sur ce créneau"
	msgCoworkingFull      = "Capacité coworking atteinte pour ce créneau. Veuillez choisir un autre horaire."
	msgRoomConflict       = "La salle de réunion est déjà réservée pour ce créneau. Veuillez choisir un autre horaire."
	msgAvailabilityFailed = "Erreur lors de la vérification de disponibilité"
	msgCreateFailed       = "Erreur lors de la création de la réservation"
	msgServerError        = "Erreur serveur. Veuillez réessayer plus tard."
)

// Answers to request bodies that cannot be decoded at all.
const (
	MsgMissingParams  = msgMissingParams
	MsgInvalidBooking = msgInvalidBooking
)
