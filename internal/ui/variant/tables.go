package variant

func registerButtonVariants(r *registry) {
	r.flat(KindButton, false,
		flatEntry{ButtonPrimary, Bundle{ColorRole: RoleWhite, Order: OrderLabelOnly, Classes: []string{"button--primary"}}},
		flatEntry{ButtonSecondary, Bundle{ColorRole: RoleDark, Order: OrderLabelOnly, Classes: []string{"button--secondary"}}},
		flatEntry{ButtonGreen, Bundle{ColorRole: RoleDark, Order: OrderLabelOnly, Classes: []string{"button--green"}}},
	)
}

// Card color roles describe the tone of the card's call-to-action link.
func registerCardVariants(r *registry) {
	r.flat(KindCard, false,
		flatEntry{CardGrey, Bundle{ColorRole: RoleDark, Order: OrderLabelFirst, Classes: []string{"card--grey"}}},
		flatEntry{CardGreen, Bundle{ColorRole: RoleDark, Order: OrderLabelFirst, Classes: []string{"card--green"}}},
		flatEntry{CardDark, Bundle{ColorRole: RoleWhite, Order: OrderLabelFirst, Classes: []string{"card--dark"}}},
		flatEntry{CardWhite, Bundle{ColorRole: RoleDark, Order: OrderLabelFirst, Classes: []string{"card--white"}}},
	)
}

func registerLabelVariants(r *registry) {
	r.flat(KindLabel, false,
		flatEntry{LabelGreen, Bundle{ColorRole: RoleGreen, Order: OrderLabelOnly}},
		flatEntry{LabelWhite, Bundle{ColorRole: RoleWhite, Order: OrderLabelOnly, Classes: []string{"heading__label-text--white"}}},
	)
}

func registerInputVariants(r *registry) {
	r.flat(KindInput, false,
		flatEntry{InputDefault, Bundle{ColorRole: RoleDark, Order: OrderLabelFirst}},
		flatEntry{InputDark, Bundle{ColorRole: RoleWhite, Order: OrderLabelFirst, Classes: []string{"input__field--dark"}}},
	)
}

func registerIconVariants(r *registry) {
	r.flat(KindIcon, true,
		flatEntry{IconPlus, Bundle{Asset: "icon-plus", Alt: "展開する", ColorRole: RoleDark, Order: OrderDecorationFirst, Classes: []string{"icon--plus"}}},
		flatEntry{IconMinus, Bundle{Asset: "icon-minus", Alt: "折りたたむ", ColorRole: RoleDark, Order: OrderDecorationFirst, Classes: []string{"icon--minus"}}},
	)
}

func registerLogoVariants(r *registry) {
	r.flat(KindLogo, true,
		flatEntry{LogoDefault, Bundle{Asset: "logo-black", Alt: "Positivus", ColorRole: RoleDark, Order: OrderDecorationFirst, Classes: []string{"logo--default"}}},
		flatEntry{LogoLight, Bundle{Asset: "logo-white", Alt: "Positivus", ColorRole: RoleWhite, Order: OrderDecorationFirst, Classes: []string{"logo--light"}}},
	)
}
